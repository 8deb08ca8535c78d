// Command gridedit authors the arena occupancy grid over a live camera feed and
// inspects saved grid files.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zucenko/arena/capture"
	"github.com/zucenko/arena/editor"
	"github.com/zucenko/arena/mapview"
	"github.com/zucenko/arena/store"
)

var (
	gridPath string
	verbose  bool

	errorColor = color.New(color.FgRed, color.Bold)
	labelColor = color.New(color.FgCyan)
	valueColor = color.New(color.FgYellow)
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

var rootCmd = &cobra.Command{
	Use:   "gridedit",
	Short: "Author and inspect the arena occupancy grid",
	Long: `gridedit keeps the arena occupancy grid: a matrix of free (O), obstacle (X)
and home (H) cells stored as JSON. The edit command overlays the grid on a camera
feed so cells can be toggled by clicking on them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func newEditCmd() *cobra.Command {
	cfg := editor.DefaultConfig()
	src := sourceOptions{kind: "webcam"}
	var noAutoSave bool
	var width, height int

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit the grid over a camera feed",
		Long: `Opens a window showing the camera feed with the grid on top.
Controls: left click toggles a cell between free and obstacle, 's' saves, 'q' quits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Path = gridPath
			cfg.AutoSave = !noAutoSave
			if err := cfg.Validate(); err != nil {
				return err
			}

			source, err := openSource(src)
			if err != nil {
				return err
			}
			w, h, err := windowSize(source, width, height)
			if err != nil {
				source.Close()
				return err
			}
			face, err := newFace(hudSize)
			if err != nil {
				source.Close()
				return err
			}
			win := newWindow(w, h, face)

			e, err := editor.New(cfg, editor.NewRig(source, win))
			if err != nil {
				return err
			}
			win.locate = e.CellAt
			return e.Run(win.drive(cfg.Title))
		},
	}
	f := cmd.Flags()
	f.IntVar(&cfg.Rows, "rows", cfg.Rows, "grid rows")
	f.IntVar(&cfg.Cols, "cols", cfg.Cols, "grid columns")
	f.BoolVar(&noAutoSave, "no-autosave", false, "only save when 's' is pressed")
	f.Float64Var(&cfg.Opacity, "opacity", cfg.Opacity, "obstacle tint opacity")
	f.StringVar(&src.kind, "source", src.kind, "frame source: webcam, snapshot or still")
	f.IntVar(&src.device, "device", 0, "webcam index")
	f.StringVar(&src.url, "url", os.Getenv("CAMERA_URL"), "snapshot camera URL")
	f.StringVar(&src.user, "user", os.Getenv("CAMERA_USER"), "snapshot camera user")
	f.StringVar(&src.password, "password", os.Getenv("CAMERA_PASSWORD"), "snapshot camera password")
	f.StringVar(&src.resolution, "resolution", "", "snapshot resolution, e.g. 2048x1536")
	f.DurationVar(&src.interval, "interval", 0, "minimum time between snapshot requests")
	f.StringVar(&src.image, "image", "images/arena.png", "image shown by the still source")
	f.IntVar(&width, "width", 0, "window width, defaults to the frame width")
	f.IntVar(&height, "height", 0, "window height, defaults to the frame height")
	return cmd
}

func newShowCmd() *cobra.Command {
	symbols := mapview.DefaultSymbols
	var sep string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the grid with custom symbols",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := mapview.String(gridPath, symbols, sep)
			if err != nil {
				return err
			}
			if out == "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "no grid at %s\n", gridPath)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&symbols.Free, "free", symbols.Free, "symbol for free cells")
	f.StringVar(&symbols.Obstacle, "obstacle", symbols.Obstacle, "symbol for obstacle cells")
	f.StringVar(&symbols.Home, "home", symbols.Home, "symbol for home cells")
	f.StringVar(&sep, "sep", " ", "separator between cells")
	return cmd
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show grid dimensions and cell counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := mapview.InfoOf(gridPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			row := func(label string, v interface{}) {
				labelColor.Fprintf(out, "%-10s", label)
				valueColor.Fprintln(out, v)
			}
			row("path", gridPath)
			row("exists", info.Exists)
			row("size", fmt.Sprintf("%dx%d", info.Rows, info.Cols))
			row("cells", info.TotalCells)
			row("free", info.FreeCount)
			row("obstacle", info.ObstacleCount)
			row("home", info.HomeCount)
			return nil
		},
	}
}

func newSnapshotCmd() *cobra.Command {
	src := sourceOptions{kind: "snapshot"}
	var output string
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Fetch one camera snapshot and save it as PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			if src.url == "" {
				return errors.New("no camera URL, set --url or CAMERA_URL")
			}
			cam, err := capture.OpenSnapshot(src.snapshot())
			if err != nil {
				return err
			}
			defer cam.Close()
			frame, err := cam.Read()
			if err != nil {
				return err
			}
			if err := capture.SaveImage(frame, output); err != nil {
				return err
			}
			b := frame.Bounds()
			log.WithFields(log.Fields{"width": b.Dx(), "height": b.Dy(), "path": output}).Info("snapshot saved")
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "images/arena.png", "where to write the image")
	f.StringVar(&src.url, "url", os.Getenv("CAMERA_URL"), "snapshot camera URL")
	f.StringVar(&src.user, "user", os.Getenv("CAMERA_USER"), "camera user")
	f.StringVar(&src.password, "password", os.Getenv("CAMERA_PASSWORD"), "camera password")
	f.StringVar(&src.resolution, "resolution", "", "requested resolution, e.g. 2048x1536")
	return cmd
}

func main() {
	rootCmd.PersistentFlags().StringVar(&gridPath, "grid", envOr("GRID_PATH", store.DefaultPath), "grid file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(newEditCmd(), newShowCmd(), newInfoCmd(), newSnapshotCmd())

	if err := rootCmd.Execute(); err != nil {
		errorColor.Fprintln(os.Stderr, "error:", describe(err))
		os.Exit(1)
	}
}

// describe adds a hint for the errors a user can act on.
func describe(err error) string {
	var fe *store.FormatError
	if errors.As(err, &fe) {
		return err.Error() + "\nfix or delete " + fe.Path + " and try again"
	}
	return strings.TrimSpace(err.Error())
}
