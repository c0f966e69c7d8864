package component

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned for configuration values outside the
// enumerated sets.
var ErrInvalidConfig = errors.New("invalid component configuration")

// Size is the button size. The zero value is SizeMedium.
type Size int

const (
	SizeMedium Size = iota
	SizeSmall
	SizeLarge
	numSizes
)

// Shape is the button corner style. The zero value is ShapeRoundedMD.
type Shape int

const (
	ShapeRoundedMD Shape = iota
	ShapeRoundedSM
	ShapeRoundedFull
	numShapes
)

// Variant is the button color scheme. The zero value is VariantPrimary.
type Variant int

const (
	VariantPrimary Variant = iota
	VariantSecondary
	VariantOutline
	VariantDanger
	numVariants
)

var sizeNames = [...]string{
	SizeMedium: "medium",
	SizeSmall:  "small",
	SizeLarge:  "large",
}

var shapeNames = [...]string{
	ShapeRoundedMD:   "rounded-md",
	ShapeRoundedSM:   "rounded-sm",
	ShapeRoundedFull: "rounded-full",
}

var variantNames = [...]string{
	VariantPrimary:   "primary",
	VariantSecondary: "secondary",
	VariantOutline:   "outline",
	VariantDanger:    "danger",
}

// Build fails here when a name table and its enumeration disagree in length.
var (
	_ = [1]struct{}{}[len(sizeNames)-int(numSizes)]
	_ = [1]struct{}{}[len(shapeNames)-int(numShapes)]
	_ = [1]struct{}{}[len(variantNames)-int(numVariants)]
)

// Sizes lists every size, smallest first.
var Sizes = []Size{SizeSmall, SizeMedium, SizeLarge}

// Shapes lists every shape, squarest first.
var Shapes = []Shape{ShapeRoundedSM, ShapeRoundedMD, ShapeRoundedFull}

// Variants lists every variant.
var Variants = []Variant{VariantPrimary, VariantSecondary, VariantOutline, VariantDanger}

func (s Size) Valid() bool    { return s >= 0 && s < numSizes }
func (s Shape) Valid() bool   { return s >= 0 && s < numShapes }
func (v Variant) Valid() bool { return v >= 0 && v < numVariants }

func (s Size) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Size(%d)", int(s))
	}
	return sizeNames[s]
}

func (s Shape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

func (v Variant) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// ParseSize parses "small", "medium" or "large". The empty string selects
// the default.
func ParseSize(name string) (Size, error) {
	if name == "" {
		return SizeMedium, nil
	}
	for i, n := range sizeNames {
		if n == name {
			return Size(i), nil
		}
	}
	return 0, fmt.Errorf("%w: size %q", ErrInvalidConfig, name)
}

// ParseShape parses "rounded-sm", "rounded-md" or "rounded-full". The empty
// string selects the default.
func ParseShape(name string) (Shape, error) {
	if name == "" {
		return ShapeRoundedMD, nil
	}
	for i, n := range shapeNames {
		if n == name {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("%w: shape %q", ErrInvalidConfig, name)
}

// ParseVariant parses "primary", "secondary", "outline" or "danger". The
// empty string selects the default.
func ParseVariant(name string) (Variant, error) {
	if name == "" {
		return VariantPrimary, nil
	}
	for i, n := range variantNames {
		if n == name {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("%w: variant %q", ErrInvalidConfig, name)
}
