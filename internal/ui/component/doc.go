// Package component provides the stateless presentation components used by
// the pages: cards for records and a configurable button.
//
// Components are values. Rendering is a pure function of the record and the
// configuration; the only side effect a component can produce is the
// activation message it hands back to its caller as a tea.Cmd.
//
// Button configuration is drawn from closed enumerations (Size, Shape,
// Variant). Each enumeration indexes a fixed profile table whose length is
// checked against the enumeration at compile time, and out-of-set values are
// rejected by NewButton and the Parse functions rather than defaulted.
package component
