// Package phantom maps between the three coordinate spaces of a rendered
// text line: origin (raw document bytes of one logical line), merge (origin
// lines concatenated after fold collapsing, before any virtual text), and
// final (the rendered column sequence once virtual text is spliced in).
//
// The package is responsible for annotating a single origin line with its
// phantom spans (AnnotateLine), concatenating annotated lines that a fold
// collapsed into one rendered row (MergedLine), and answering position
// mapping queries over the result (cursor placement, hit testing, styling
// span translation).
package phantom
