package harness

import (
	"fmt"
	"slices"
	"strings"

	"github.com/datatrails/go-datatrails-common/logger"

	morton "github.com/Akron/morton-go"
)

// Mismatch is one strategy result that disagrees with the reference.
type Mismatch struct {
	Method string
	Input  []uint64
	Got    []uint64
	Want   []uint64
}

// String formats the mismatch with every value in hex.
func (m Mismatch) String() string {
	return fmt.Sprintf("%s: input %s got %s want %s", m.Method, hexTuple(m.Input), hexTuple(m.Got), hexTuple(m.Want))
}

func hexTuple(v []uint64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%#x", x)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Sweep summarises one correctness pass over every strategy of a
// (dims, width, operation) combination.
type Sweep struct {
	Name       string
	Passed     bool
	Checked    int
	Mismatches []Mismatch
}

// Checker runs the correctness sweeps. Mismatches are logged and collected,
// never fatal.
type Checker struct {
	log logger.Logger
}

// NewChecker returns a Checker logging through log.
func NewChecker(log logger.Logger) *Checker {
	return &Checker{log: log}
}

func (c *Checker) compare(s *Sweep, method string, input, got, want []uint64) {
	s.Checked++
	if slices.Equal(got, want) {
		return
	}
	mm := Mismatch{Method: method, Input: input, Got: got, Want: want}
	c.log.Errorf("%s: %s", s.Name, mm)
	s.Mismatches = append(s.Mismatches, mm)
}

func (c *Checker) finish(s *Sweep) {
	s.Passed = len(s.Mismatches) == 0
	c.log.Infof("%s: %d checks, %d mismatches", s.Name, s.Checked, len(s.Mismatches))
}

// decodeProbes returns the usable all-ones code and, when it differs, the
// all-ones code of M. Both must decode to the axis mask on every axis.
func decodeProbes[M morton.Code](dims uint) []M {
	probes := []M{morton.CodeMask[M](dims)}
	if all := ^M(0); all != probes[0] {
		probes = append(probes, all)
	}
	return probes
}

// CheckEncode2D compares every codec's encode over 0..15² against the reference.
func CheckEncode2D[M morton.Code, C morton.Coord](c *Checker, name string, codecs []morton.Codec2D[M, C]) Sweep {
	s := Sweep{Name: name}
	for _, codec := range codecs {
		method := codec.Strategy.String()
		for x := range referenceEdge {
			for y := range referenceEdge {
				got := uint64(codec.Encode(C(x), C(y)))
				c.compare(&s, method, []uint64{uint64(x), uint64(y)}, []uint64{got}, []uint64{reference2DCode(x, y)})
			}
		}
	}
	c.finish(&s)
	return s
}

// CheckDecode2D compares every codec's decode of the codes 0..4095 and of the
// boundary probes against the reference.
func CheckDecode2D[M morton.Code, C morton.Coord](c *Checker, name string, codecs []morton.Codec2D[M, C]) Sweep {
	s := Sweep{Name: name}
	axis := morton.AxisMask[M](2)
	for _, codec := range codecs {
		method := codec.Strategy.String()
		for m := range referenceCodes {
			x, y := codec.Decode(M(m))
			want := reference2DDecode[m]
			c.compare(&s, method, []uint64{uint64(m)},
				[]uint64{uint64(x), uint64(y)},
				[]uint64{uint64(want[0]), uint64(want[1])})
		}
		for _, m := range decodeProbes[M](2) {
			x, y := codec.Decode(m)
			c.compare(&s, method, []uint64{uint64(m)}, []uint64{uint64(x), uint64(y)}, []uint64{axis, axis})
		}
	}
	c.finish(&s)
	return s
}

// CheckEncode3D compares every codec's encode over 0..15³ against the reference.
func CheckEncode3D[M morton.Code, C morton.Coord](c *Checker, name string, codecs []morton.Codec3D[M, C]) Sweep {
	s := Sweep{Name: name}
	for _, codec := range codecs {
		method := codec.Strategy.String()
		for x := range referenceEdge {
			for y := range referenceEdge {
				for z := range referenceEdge {
					got := uint64(codec.Encode(C(x), C(y), C(z)))
					c.compare(&s, method, []uint64{uint64(x), uint64(y), uint64(z)}, []uint64{got}, []uint64{reference3DCode(x, y, z)})
				}
			}
		}
	}
	c.finish(&s)
	return s
}

// CheckDecode3D compares every codec's decode of the codes 0..4095 and of the
// boundary probes against the reference.
func CheckDecode3D[M morton.Code, C morton.Coord](c *Checker, name string, codecs []morton.Codec3D[M, C]) Sweep {
	s := Sweep{Name: name}
	axis := morton.AxisMask[M](3)
	for _, codec := range codecs {
		method := codec.Strategy.String()
		for m := range referenceCodes {
			x, y, z := codec.Decode(M(m))
			want := reference3DDecode[m]
			c.compare(&s, method, []uint64{uint64(m)},
				[]uint64{uint64(x), uint64(y), uint64(z)},
				[]uint64{uint64(want[0]), uint64(want[1]), uint64(want[2])})
		}
		for _, m := range decodeProbes[M](3) {
			x, y, z := codec.Decode(m)
			c.compare(&s, method, []uint64{uint64(m)}, []uint64{uint64(x), uint64(y), uint64(z)}, []uint64{axis, axis, axis})
		}
	}
	c.finish(&s)
	return s
}

// CheckAll runs the encode and decode sweeps of every (dims, width)
// combination over all registered strategies.
func (c *Checker) CheckAll() []Sweep {
	return []Sweep{
		CheckEncode2D(c, "2D-32 encode", morton.Codecs2D32()),
		CheckDecode2D(c, "2D-32 decode", morton.Codecs2D32()),
		CheckEncode2D(c, "2D-64 encode", morton.Codecs2D64()),
		CheckDecode2D(c, "2D-64 decode", morton.Codecs2D64()),
		CheckEncode3D(c, "3D-32 encode", morton.Codecs3D32()),
		CheckDecode3D(c, "3D-32 decode", morton.Codecs3D32()),
		CheckEncode3D(c, "3D-64 encode", morton.Codecs3D64()),
		CheckDecode3D(c, "3D-64 decode", morton.Codecs3D64()),
	}
}

// Verify returns ErrSweepFailed naming every sweep that did not pass.
func Verify(sweeps []Sweep) error {
	var failed []string
	for _, s := range sweeps {
		if !s.Passed {
			failed = append(failed, s.Name)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("%w: %s", ErrSweepFailed, strings.Join(failed, ", "))
	}
	return nil
}
