/*
Package pixdump decodes an image, resizes it to the requested dimensions and prints
its pixel values as text: one line per image row, every value followed by a space.

The values can be printed as RGB, grayscale, hue, HSV or as a binary alpha silhouette.
The HSV values follow the 8-bit convention where the hue is halved to fit into the 0-179 range.

The package comes with two command line tools, imagedecode and alphasilhouette.
To check the supported flags type:

	$ imagedecode --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"log"
		"os"

		"github.com/esimov/pixdump"
	)

	func main() {
		p := &pixdump.Processor{
			NewWidth:  80,
			NewHeight: 60,
			Mode:      pixdump.ModeHSV,
		}

		if err := p.Process(os.Stdin, os.Stdout); err != nil {
			log.Fatalf("error printing the image: %v", err)
		}
	}
*/
package pixdump
