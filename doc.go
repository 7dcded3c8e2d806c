// Package cardkit turns declarative greeting-card scene descriptions into
// precise drawing operations on a page-oriented output surface.
//
// A scene is a Card made of Panels. Each panel owns a coordinate frame in
// inches and holds shapes, text, and images positioned relative to the panel
// origin (bottom-left). Rendering converts every coordinate to absolute page
// points (72 per inch) and emits drawing calls on a surface.Surface.
//
// The model types in this package are immutable value objects validated at
// construction time. A render pass reads them without mutation; the only
// side effects land on the output surface.
//
// Subpackages:
//   - svgpath: parser for the vector-path mini-language (SVG path subset)
//   - surface: the drawing surface abstraction and a recording implementation
//   - render: the per-shape transform and drawing pipeline
//   - textfit: text measurement and overflow fitting
//   - decor: decorative composite expansion
//   - backend/pdf: PDF page surface backed by fpdf
//
// Basic usage:
//
//	card := cardkit.NewHalfFoldCard("Season's Greetings")
//	front := card.Panel(cardkit.PanelFront)
//	front.Texts = append(front.Texts, cardkit.NewTextElement("With love", 4.25, 2.75))
//
//	dst := pdf.New()
//	if err := render.New(dst).RenderCard(card); err != nil {
//	    log.Fatal(err)
//	}
//	if err := dst.Save("card.pdf"); err != nil {
//	    log.Fatal(err)
//	}
package cardkit
