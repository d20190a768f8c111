// meshinfo is a CLI utility that inspects 3D model files without opening a
// window: vertex, face and edge counts plus the bounding box.
package main

import (
	"fmt"
	"os"

	"github.com/Faultbox/meshview/pkg/mesh"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	exitCode := 0
	for _, path := range os.Args[1:] {
		if path == "-h" || path == "--help" {
			printUsage()
			return
		}
		if err := printInfo(path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func printInfo(path string) error {
	m, err := mesh.Load(path)
	if err != nil {
		return err
	}

	min, max := m.Bounds()
	size := max.Sub(min)

	fmt.Printf("%s\n", path)
	fmt.Printf("  vertices: %d\n", len(m.Vertices))
	fmt.Printf("  faces:    %d\n", len(m.Faces))
	fmt.Printf("  edges:    %d\n", len(m.Edges))
	fmt.Printf("  bounds:   (%.3f, %.3f, %.3f) .. (%.3f, %.3f, %.3f)\n",
		min.X, min.Y, min.Z, max.X, max.Y, max.Z)
	fmt.Printf("  size:     %.3f x %.3f x %.3f\n", size.X, size.Y, size.Z)
	return nil
}

func printUsage() {
	fmt.Println(`meshinfo - 3D model file inspector

Usage:
  meshinfo <model-file> [more files...]

Supported formats: .obj, .glb, .gltf

Examples:
  meshinfo model.obj
  meshinfo scene.glb parts/*.obj`)
}
