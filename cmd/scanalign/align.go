package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/scanalign/pkg/align"
	"github.com/philipparndt/scanalign/pkg/geometry"
	"github.com/philipparndt/scanalign/pkg/stl"
	"github.com/spf13/cobra"
)

var (
	alignPick1   string
	alignNormal1 string
	alignPick2   string
	alignNormal2 string
)

var alignCmd = &cobra.Command{
	Use:   "align <fixed-file> <moving-file>",
	Short: "Compute the alignment rotations without opening the viewer",
	Long: `Derive the alignment landmarks and the two rotation phases from a
picked reference face on each scan. Picks are given in each scan's own
coordinate frame as comma-separated triples.`,
	Args: cobra.ExactArgs(2),
	Run:  runAlign,
}

func init() {
	alignCmd.Flags().StringVar(&alignPick1, "pick1", "", "pick point on the first scan (x,y,z)")
	alignCmd.Flags().StringVar(&alignNormal1, "normal1", "", "face normal at the first pick (x,y,z)")
	alignCmd.Flags().StringVar(&alignPick2, "pick2", "", "pick point on the second scan (x,y,z)")
	alignCmd.Flags().StringVar(&alignNormal2, "normal2", "", "face normal at the second pick (x,y,z)")
	alignCmd.MarkFlagRequired("pick1")
	alignCmd.MarkFlagRequired("normal1")
	alignCmd.MarkFlagRequired("pick2")
	alignCmd.MarkFlagRequired("normal2")
	rootCmd.AddCommand(alignCmd)
}

func parseTriple(s string) (geometry.Vector3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return geometry.Vector3{}, fmt.Errorf("expected x,y,z but got %q", s)
	}
	var values [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("invalid coordinate %q: %w", part, err)
		}
		values[i] = v
	}
	return geometry.NewVector3(values[0], values[1], values[2]), nil
}

func parsePick(pointFlag, normalFlag string) (align.PickedFace, error) {
	point, err := parseTriple(pointFlag)
	if err != nil {
		return align.PickedFace{}, err
	}
	normal, err := parseTriple(normalFlag)
	if err != nil {
		return align.PickedFace{}, err
	}
	return align.PickedFace{Point: point, Normal: normal}, nil
}

func runAlign(cmd *cobra.Command, args []string) {
	fixed, err := stl.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading fixed scan: %v\n", err)
		os.Exit(1)
	}
	moving, err := stl.Load(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading moving scan: %v\n", err)
		os.Exit(1)
	}

	pick1, err := parsePick(alignPick1, alignNormal1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	pick2, err := parsePick(alignPick2, alignNormal2)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	plane1 := align.SelectionPlane(fixed, pick1)
	plane2 := align.SelectionPlane(moving, pick2)

	p1, p2, err := align.Landmarks(fixed, plane1, moving, plane2)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error deriving landmarks: %v\n", err)
		os.Exit(1)
	}

	first, second := align.NewAlignment(p1, p2).Rotations()

	fmt.Println("Alignment Result")
	fmt.Println("================")
	fmt.Printf("Landmark 1: %.6f %.6f %.6f\n", p1.X, p1.Y, p1.Z)
	fmt.Printf("Landmark 2: %.6f %.6f %.6f\n\n", p2.X, p2.Y, p2.Z)
	fmt.Printf("Phase 1: rotate %.6f rad about %s\n", first.Angle, first.Axis)
	fmt.Printf("Phase 2: rotate %.6f rad about %s\n", second.Angle, second.Axis)
}
