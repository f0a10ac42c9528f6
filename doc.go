// Package mllwriter provides writer utilities to simplify generating HTML,
// XML, and JSON text output programmatically.
//
// Every markup-language-like document is built from blocks: paired tags in
// HTML and XML ("div" and "/div"), objects in JSON ("{" and "}"). The shared
// Writer interface lets callers open and close those blocks, attach
// properties to the most recently written tag, and control line feeds and
// indentation. One concrete writer exists per format, each in its own
// package: htmlwriter, xmlwriter, and jsonwriter. The format package selects
// and constructs writers by output format.
//
// Basic usage:
//
//	wr := htmlwriter.New()
//	wr.OpenTagAttr("div", "class", "container")
//	wr.AddAttr("id", "logo")
//	wr.LineFeedInc()
//	wr.SingleTag("img")
//	wr.AddAttr("style", "width: auto")
//	wr.LineFeedDec()
//	wr.CloseTag()
//	fmt.Println(wr)
//
// Writing a JSON document with a nested object:
//
//	wr := jsonwriter.New()
//	wr.OpenTag("")
//	wr.AddAttr("First Name", `"Muster"`)
//	wr.AddAttr("Second Name", `"Max"`)
//	wr.OpenTag("Data")
//	wr.AddAttr("Number of Kids", "2")
//	wr.CloseTag()
//	wr.CloseTag()
//
// The HTML and XML writers never emit line feeds on their own, leaving the
// layout of the document to the caller. The JSON writer manages line feeds
// and comma separation automatically.
package mllwriter
