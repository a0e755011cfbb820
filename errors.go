package htree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "errors"

// ErrIllegalComposition is thrown when a tree would take an illegal shape:
// a self-closing element given child content, or a container given
// attributes.
var ErrIllegalComposition = errors.New("illegal composition")

// ErrDuplicateAttribute is thrown when a non-dashed attribute key occurs
// more than once on a single element.
var ErrDuplicateAttribute = errors.New("duplicate attribute")

// ErrAttributeNotAllowed is thrown when an attribute carrying a
// parent-tag constraint is attached to an element outside that set.
var ErrAttributeNotAllowed = errors.New("attribute not allowed in this element")

// ErrUnknownAttribute is thrown when an attribute name cannot be resolved
// against the catalog.
var ErrUnknownAttribute = errors.New("unknown attribute")

// ErrUnknownTag is thrown when a tag name cannot be resolved against the
// catalog.
var ErrUnknownTag = errors.New("unknown tag")

// ErrNoAttribute is thrown when reading or deleting an attribute key that
// is not present on the element.
var ErrNoAttribute = errors.New("attribute does not exist in element")

// ErrIndexRange is thrown for out-of-range child indexes.
var ErrIndexRange = errors.New("index out of range in child nodes")

// ErrBadValue is thrown for unsupported value types and values: content
// that is neither node, attribute nor scalar, non-scalar text input, an
// unsupported boolean display mode, or a negative repetition count.
var ErrBadValue = errors.New("unsupported value")

// ErrNoScope is thrown when a builder context is exited with no open scope.
var ErrNoScope = errors.New("no open scope")
