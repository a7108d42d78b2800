package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/philipparndt/scanalign/pkg/geometry"
	"github.com/philipparndt/scanalign/pkg/slicing"
	"github.com/philipparndt/scanalign/pkg/stl"
	"github.com/spf13/cobra"
)

var (
	contourAxis   string
	contourOffset float64
)

var contourCmd = &cobra.Command{
	Use:   "contour [file]",
	Short: "Extract the cross-section contour of a scan",
	Long:  "Cut the scan with an axis-aligned plane and print the stitched contour polylines.",
	Args:  cobra.ExactArgs(1),
	Run:   runContour,
}

func init() {
	contourCmd.Flags().StringVar(&contourAxis, "axis", "z", "plane normal axis (x, y or z)")
	contourCmd.Flags().Float64Var(&contourOffset, "offset", 0, "plane offset along the axis")
	rootCmd.AddCommand(contourCmd)
}

func axisNormal(axis string) (geometry.Vector3, error) {
	switch strings.ToLower(axis) {
	case "x":
		return geometry.NewVector3(1, 0, 0), nil
	case "y":
		return geometry.NewVector3(0, 1, 0), nil
	case "z":
		return geometry.NewVector3(0, 0, 1), nil
	}
	return geometry.Vector3{}, fmt.Errorf("unknown axis %q", axis)
}

func runContour(cmd *cobra.Command, args []string) {
	m, err := stl.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scan: %v\n", err)
		os.Exit(1)
	}

	normal, err := axisNormal(contourAxis)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	plane := geometry.NewPlane(normal, normal.Mul(contourOffset))

	segments, err := slicing.ExtractContour(m, plane)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error extracting contour: %v\n", err)
		os.Exit(1)
	}
	polylines := slicing.Stitch(segments, slicing.StitchTolerance)

	fmt.Printf("Contour at %s = %g: %d segment(s), %d polyline(s)\n\n",
		strings.ToUpper(contourAxis), contourOffset, len(segments), len(polylines))
	for i, polyline := range polylines {
		kind := "open"
		if polyline.Closed {
			kind = "closed"
		}
		fmt.Printf("Polyline %d (%s, %d points, length %.6f):\n", i+1, kind, len(polyline.Points), polyline.Length())
		for _, p := range polyline.Points {
			fmt.Printf("  %.6f %.6f %.6f\n", p.X, p.Y, p.Z)
		}
		fmt.Println()
	}
}
