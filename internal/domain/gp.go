package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// GP is an immutable, arbitrary-precision amount of gold pieces.
// The zero value is 0 GP. It serializes as a JSON string so values beyond
// 2^53 survive a round trip through JavaScript clients.
type GP struct {
	v *big.Int
}

// NewGP returns n gold pieces.
func NewGP(n int64) GP {
	return GP{v: big.NewInt(n)}
}

// ParseGP parses a base-10 integer amount. An empty string is zero.
func ParseGP(s string) (GP, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return GP{}, nil
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return GP{}, fmt.Errorf("%w: %q is not a whole GP amount", ErrInvalidInput, s)
	}
	return GP{v: n}, nil
}

// MustParseGP is ParseGP for constants and tests.
func MustParseGP(s string) GP {
	g, err := ParseGP(s)
	if err != nil {
		panic(err)
	}
	return g
}

func (g GP) big() *big.Int {
	if g.v == nil {
		return new(big.Int)
	}
	return g.v
}

func (g GP) Add(o GP) GP {
	return GP{v: new(big.Int).Add(g.big(), o.big())}
}

func (g GP) Sub(o GP) GP {
	return GP{v: new(big.Int).Sub(g.big(), o.big())}
}

// SubFloor subtracts o and clamps the result at zero.
func (g GP) SubFloor(o GP) GP {
	r := g.Sub(o)
	if r.Sign() < 0 {
		return GP{}
	}
	return r
}

func (g GP) MulInt(n int64) GP {
	return GP{v: new(big.Int).Mul(g.big(), big.NewInt(n))}
}

// DivInt divides by n, truncating toward zero. Division by zero yields zero.
func (g GP) DivInt(n int64) GP {
	if n == 0 {
		return GP{}
	}
	return GP{v: new(big.Int).Quo(g.big(), big.NewInt(n))}
}

// MulFrac returns g * num / den, truncated.
func (g GP) MulFrac(num, den int64) GP {
	if den == 0 {
		return GP{}
	}
	r := new(big.Int).Mul(g.big(), big.NewInt(num))
	return GP{v: r.Quo(r, big.NewInt(den))}
}

func (g GP) Cmp(o GP) int {
	return g.big().Cmp(o.big())
}

func (g GP) Sign() int {
	return g.big().Sign()
}

func (g GP) IsZero() bool {
	return g.Sign() == 0
}

// Int64 returns the value and whether it fits in an int64.
func (g GP) Int64() (int64, bool) {
	b := g.big()
	return b.Int64(), b.IsInt64()
}

// BigInt returns a copy of the underlying integer.
func (g GP) BigInt() *big.Int {
	return new(big.Int).Set(g.big())
}

// Float64 returns the nearest float64, for metrics and display only.
func (g GP) Float64() float64 {
	f, _ := new(big.Float).SetInt(g.big()).Float64()
	return f
}

func (g GP) String() string {
	return g.big().String()
}

func (g GP) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.String())
}

// UnmarshalJSON accepts both a quoted decimal string and a bare JSON integer.
func (g *GP) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*g = GP{}
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	}

	parsed, err := ParseGP(raw)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
