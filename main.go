// Command spirograph is an interactive spirograph studio: it generates
// hypotrochoid and epitrochoid curves from typed or randomly evolved
// parameters and serves the drawing at a local web page.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/banshee-data/spirograph/internal/config"
	"github.com/banshee-data/spirograph/internal/curve"
	"github.com/banshee-data/spirograph/internal/geom"
	"github.com/banshee-data/spirograph/internal/render"
	"github.com/banshee-data/spirograph/internal/session"
	"github.com/banshee-data/spirograph/internal/viewer"
)

var (
	listen     = flag.String("listen", ":8321", "Listen address for the curve viewer")
	configPath = flag.String("config", "", "Optional JSON defaults file")
	seed       = flag.Int64("seed", 0, "Randomness seed (0 uses the current time)")
	noBrowser  = flag.Bool("no-browser", false, "Do not open the viewer page on start")
)

const menuText = `Next action:
  [Enter]  Generate next random curve (same settings)
  b        Batch: run N random curves with a pause
  l        Locks: fix R / r / d for random runs
  e        Edit R / r / d directly (with guidance)
  s        Session settings (complexity, constraints, evolution, display)
  t        Toggle curve type (hypotrochoid <-> epitrochoid)
  p        Print analysis of the current curve
  q        Quit`

func openBrowser(url string) {
	var cmd string
	var args []string

	switch runtime.GOOS {
	case "darwin":
		cmd = "open"
		args = []string{url}
	case "linux":
		cmd = "xdg-open"
		args = []string{url}
	case "windows":
		cmd = "cmd"
		args = []string{"/c", "start", url}
	default:
		log.Printf("Unsupported platform: %s", runtime.GOOS)
		return
	}

	if err := exec.Command(cmd, args...).Start(); err != nil {
		log.Printf("Failed to open browser: %v", err)
	}
}

// studio ties the session state to the engine and the viewer.
type studio struct {
	session *session.State
	viewer  *viewer.WebServer
	ui      *prompter
}

// run generates the requested curve, builds its render plan, publishes
// both to the viewer, and records the run. A failed generation leaves
// the session baseline untouched.
func (st *studio) run(req curve.Request) error {
	period, err := geom.ClosurePeriod(req.TrackRadius, req.RollerRadius)
	if err != nil {
		return err
	}

	c, err := curve.Generate(req, st.session.ResolutionFor(period))
	if err != nil {
		return err
	}

	plan, err := render.BuildPlan(c, st.session.RenderSettings())
	if err != nil {
		return err
	}

	rec := st.session.RecordRun(req, c)
	st.viewer.Publish(viewer.Snapshot{
		RunID:     rec.ID,
		Request:   req,
		Curve:     c,
		Plan:      plan,
		CreatedAt: rec.CreatedAt,
	})

	st.ui.printRun(rec, c)
	return nil
}

func (st *studio) runRandom() {
	req := st.session.NextRandomRequest()
	if err := st.run(req); err != nil {
		fmt.Fprintf(st.ui.out, "Generation failed: %v\n", err)
	}
}

func (st *studio) runBatch() {
	count := st.ui.promptInt("How many curves?", 10, 1, 1000)
	pause := st.ui.promptFloat("Pause between curves (seconds)?", 2, 0, 3600)

	for i := 0; i < count; i++ {
		st.runRandom()
		if i < count-1 {
			time.Sleep(time.Duration(pause * float64(time.Second)))
		}
	}
}

func (st *studio) toggleKind() {
	kind := st.session.ToggleKind()
	fmt.Fprintf(st.ui.out, "Curve type is now %s.\n", kind)
	if req, ok := st.session.LastRequest(); ok {
		req.Kind = kind
		if err := st.run(req); err != nil {
			fmt.Fprintf(st.ui.out, "Generation failed: %v\n", err)
		}
	}
}

func (st *studio) printAnalysis() {
	req, ok := st.session.LastRequest()
	if !ok {
		fmt.Fprintln(st.ui.out, "No curve yet. Press Enter to generate one, or use e to type values.")
		return
	}
	st.ui.printAnalysis(req)
}

func (st *studio) loop() {
	for {
		fmt.Fprintln(st.ui.out)
		fmt.Fprintln(st.ui.out, menuText)
		st.ui.printStatus(st.session)

		line, ok := st.ui.readLine("> ")
		if !ok {
			return
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "q":
			return
		case "":
			st.runRandom()
		case "b":
			st.runBatch()
		case "l":
			st.ui.editLocks(st.session)
		case "e":
			if req, ok := st.ui.editGeometry(st.session); ok {
				if err := st.run(req); err != nil {
					fmt.Fprintf(st.ui.out, "Generation failed: %v\n", err)
				}
			}
		case "s":
			st.ui.editSettings(st.session)
		case "t":
			st.toggleKind()
		case "p":
			st.printAnalysis()
		default:
			fmt.Fprintln(st.ui.out, "Unknown command. Press Enter for the next random curve, or use b/l/e/s/t/p/q.")
		}
	}
}

func main() {
	flag.Parse()

	if *listen == "" {
		log.Fatal("Listen address is required")
	}

	seedValue := *seed
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}

	sess := session.New(seedValue)
	if *configPath != "" {
		defaults, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if defaults.Listen != nil && *defaults.Listen != "" {
			*listen = *defaults.Listen
		}
		if err := defaults.Apply(sess); err != nil {
			log.Fatalf("Failed to apply config: %v", err)
		}
	}

	ws := viewer.NewWebServer(viewer.WebServerConfig{Address: *listen})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := ws.Start(ctx); err != nil {
			log.Printf("Viewer error: %v", err)
		}
	}()

	log.Printf("Curve viewer listening on %s", ws.URL())
	if !*noBrowser {
		openBrowser(ws.URL())
	}

	st := &studio{
		session: sess,
		viewer:  ws,
		ui:      newPrompter(bufio.NewScanner(os.Stdin), os.Stdout),
	}
	st.loop()

	stop()
	wg.Wait()
}
