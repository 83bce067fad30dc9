package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/closestpair"
	"github.com/osuushi/closestpair/bench"
	"github.com/osuushi/closestpair/dbg"
	"github.com/osuushi/closestpair/internal"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Find the closest pair distance of a set of points, or time the solvers
// against each other.
//
// Input for solve is newline separated points in the form "x y", or an svg
// whose circles and polygon vertices are the points.

var (
	app     = kingpin.New("closestpair", "Closest pair of points in the plane.")
	noColor = app.Flag("no-color", "Disable colored output.").Envar("CLOSESTPAIR_NO_COLOR").Bool()

	solveCmd     = app.Command("solve", "Print the smallest distance between any two points.").Default()
	solveInput   = solveCmd.Arg("file", "Points to read. Defaults to stdin.").File()
	solveFormat  = solveCmd.Flag("format", "Input format.").Short('f').Default("text").Enum("text", "svg")
	solveVariant = solveCmd.Flag("variant", "Solver to use: brute-force, nlog2n or nlogn.").Short('v').Default("nlogn").Envar("CLOSESTPAIR_VARIANT").String()
	solveDraw    = solveCmd.Flag("draw", "Render the points to this PNG file.").Default("").String()
	solveScale   = solveCmd.Flag("scale", "Pixels per unit when drawing, at most. Large drawings are scaled to fit.").Default("50").Float64()
	solveImgcat  = solveCmd.Flag("imgcat", "Show the drawing in the terminal (iTerm only). Draws to a temp file if --draw isn't given.").Default("false").Bool()

	benchCmd      = app.Command("bench", "Time every solver on random points.")
	benchSizes    = benchCmd.Flag("n", "Point set size. Repeat for several.").Ints()
	benchTrials   = benchCmd.Flag("trials", "Point sets per size.").Default("1").Int()
	benchSeed     = benchCmd.Flag("seed", "Random seed.").Default("1").Envar("CLOSESTPAIR_SEED").Int64()
	benchPlot     = benchCmd.Flag("plot", "Plot the timing curves to this PNG file.").Default("").String()
	benchImgcat   = benchCmd.Flag("imgcat", "Show the plot in the terminal (iTerm only).").Default("false").Bool()
	benchASCII    = benchCmd.Flag("ascii", "Print ASCII plots of the timing curves.").Default("false").Bool()
	benchVariants = benchCmd.Flag("variant", "Solver to time. Repeat for several. Defaults to all.").Strings()
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("closestpair: ")

	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	au := aurora.NewAurora(!*noColor)

	var err error
	switch command {
	case solveCmd.FullCommand():
		err = solve(os.Stdout, au)
	case benchCmd.FullCommand():
		err = runBench(os.Stdout, au)
	}
	if err != nil {
		log.Fatalf("%v", au.Red(err))
	}
}

func solve(out io.Writer, au aurora.Aurora) error {
	variant, err := closestpair.ParseVariant(*solveVariant)
	if err != nil {
		return err
	}

	in := os.Stdin
	if *solveInput != nil {
		in = *solveInput
		defer in.Close()
	}

	var points []closestpair.Point
	switch *solveFormat {
	case "svg":
		points, err = internal.ReadSVGPoints(in)
	default:
		points, err = internal.ReadPoints(in)
	}
	if err != nil {
		return err
	}

	d, err := closestpair.ClosestPairDistance(points, variant)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s\n", au.Bold(au.Cyan(d.String())))

	drawPath := *solveDraw
	if drawPath == "" && *solveImgcat {
		drawPath = filepath.Join(os.TempDir(), "closestpair-"+dbg.Label()+".png")
	}
	if drawPath != "" {
		if err := internal.SavePointsPNG(drawPath, points, d, *solveScale); err != nil {
			return err
		}
		if *solveImgcat {
			return internal.Show(drawPath, out)
		}
	}
	return nil
}

func runBench(out io.Writer, au aurora.Aurora) error {
	cfg := bench.DefaultConfig()
	if len(*benchSizes) > 0 {
		cfg.Sizes = *benchSizes
	}
	cfg.Trials = *benchTrials
	cfg.Seed = *benchSeed
	for _, name := range *benchVariants {
		variant, err := closestpair.ParseVariant(name)
		if err != nil {
			return err
		}
		cfg.Variants = append(cfg.Variants, variant)
	}

	report, err := bench.Run(cfg, out)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%s\n", au.Bold(report.Label))
	report.WriteTable(out, au)

	if *benchASCII {
		fmt.Fprintf(out, "\n%s\n", report.Plot(10))
	}

	plotPath := *benchPlot
	if plotPath == "" && *benchImgcat {
		plotPath = filepath.Join(os.TempDir(), "closestpair-"+report.Label+".png")
	}
	if plotPath != "" {
		if err := internal.SavePlotPNG(plotPath, report.Curves(), "n", "seconds"); err != nil {
			return err
		}
		log.Printf("wrote %s", plotPath)
		if *benchImgcat {
			return internal.Show(plotPath, out)
		}
	}
	return nil
}
