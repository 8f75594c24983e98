// Command bulgepinch applies the bulge/pinch warp to image files on the CPU.
//
//	bulgepinch warp photo.jpg -o out.png --strength -0.6 --radius 150
//	bulgepinch warp photo.jpg --preset-file presets.json --preset soft
//	bulgepinch warp photo.jpg --preset-file presets.json --all -o outdir
//	bulgepinch presets presets.json
package main

import (
	"log"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.SetFlags(0)
		log.Print(err)
		os.Exit(1)
	}
}
