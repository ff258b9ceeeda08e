/*
Package painterly turns a photograph into a painting made of curved brush strokes.

The strokes are laid down in several passes, from the biggest brush to the
smallest one. Every pass compares the canvas with the source image over a grid
scaled to the brush, starts a stroke where the canvas differs the most and lets
it grow along the edges of the blurred source, perpendicular to the local
gradient. An optional last pass retraces the strongest edges of the source
with a thin brush.

The package provides a command line interface, supporting various flags for
selecting a style preset and tuning its parameters. To check the supported
commands type:

	$ painterly --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"log"

		"github.com/esimov/painterly"
	)

	func main() {
		doc := painterly.NewDocument(
			painterly.WithStyle(painterly.ExpressionistStyle),
			painterly.WithSeed(42),
		)
		if err := doc.Load("input.jpg"); err != nil {
			log.Fatal(err)
		}
		if err := doc.Render(); err != nil {
			log.Fatal(err)
		}
		if err := doc.Save("output.png"); err != nil {
			log.Fatal(err)
		}
	}
*/
package painterly
