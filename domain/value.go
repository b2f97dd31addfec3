// Package domain contains core concepts of the tuning system.
// Values, parameter domains and trial snapshots live here.
// No runtime, network, or storage logic should be added here.
package domain

import "fmt"

type ValueKind uint8

const (
	KindNil ValueKind = iota
	KindFloat
	KindInt
	KindString
	KindBool
)

// Value is a scalar that crosses both the wire and the disk.
// Exactly one payload field is meaningful, selected by Kind. The unused
// fields stay at their zero value so the encoded bytes are deterministic.
type Value struct {
	Kind  ValueKind
	Float float64
	Int   int64
	Str   string
	Bool  bool
}

func Float(v float64) Value { return Value{Kind: KindFloat, Float: v} }
func Int(v int64) Value     { return Value{Kind: KindInt, Int: v} }
func String(v string) Value { return Value{Kind: KindString, Str: v} }
func Bool(v bool) Value     { return Value{Kind: KindBool, Bool: v} }
func Nil() Value            { return Value{Kind: KindNil} }

func (v Value) IsNil() bool { return v.Kind == KindNil }

// Any unwraps to the native Go type, mainly for logging and display.
func (v Value) Any() any {
	switch v.Kind {
	case KindFloat:
		return v.Float
	case KindInt:
		return v.Int
	case KindString:
		return v.Str
	case KindBool:
		return v.Bool
	default:
		return nil
	}
}

func (v Value) String() string {
	if v.Kind == KindNil {
		return "<nil>"
	}
	return fmt.Sprintf("%v", v.Any())
}
