// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package match

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMatchMode indicates that a match mode is not one of the
// recognized modes.
var ErrInvalidMatchMode = errors.New("invalid match mode")

// Mode is the anchoring policy used to compare a query against headwords.
type Mode int

const (
	// Start matches headwords that begin with the query.
	Start Mode = iota

	// End matches headwords that end with the query.
	End

	// Anywhere matches headwords that contain the query.
	Anywhere

	// Exact matches headwords equal to the query.
	Exact
)

var modeNames = [...]string{
	Start:    "start",
	End:      "end",
	Anywhere: "anywhere",
	Exact:    "exact",
}

// Modes returns all recognized modes.
func Modes() []Mode {
	return []Mode{Start, End, Anywhere, Exact}
}

// ModeNames returns the names of all recognized modes.
func ModeNames() []string {
	return modeNames[:]
}

// ParseMode parses a mode name. Names are case-insensitive.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want one of %s)", ErrInvalidMatchMode, s, strings.Join(modeNames[:], ", "))
}

// Valid reports whether m is a recognized mode.
func (m Mode) Valid() bool {
	return m >= Start && m <= Exact
}

// String implements [fmt.Stringer].
func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// MarshalText implements [encoding.TextMarshaler].
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMatchMode, int(m))
	}
	return []byte(modeNames[m]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
