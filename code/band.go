/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package code

// Band is a closed numeric range of codes owned by one domain.
type Band uint8

const (
	// BandUnknown is reported for values outside every band.
	BandUnknown Band = iota

	// BandIO covers OS, filesystem and network primitive failures.
	BandIO

	// BandMessaging covers queue, pub/sub and message-format failures.
	BandMessaging

	// BandPersistence covers storage-layer query and connection failures.
	BandPersistence

	// BandDevice covers external-device communication failures.
	BandDevice

	// BandSystem covers generic, unexpected and configuration failures and
	// holds the universal fallback code.
	BandSystem

	// BandAuthorization covers permission and role failures.
	BandAuthorization

	// BandTranslation covers the translation subsystem's init, registration
	// and validation failures.
	BandTranslation
)

type bandRange struct {
	lo, hi Code
	name   string
}

var bands = [...]bandRange{
	BandUnknown:       {0, 0, "unknown"},
	BandIO:            {1001, 2000, "io"},
	BandMessaging:     {2001, 3000, "messaging"},
	BandPersistence:   {3001, 4000, "persistence"},
	BandDevice:        {4001, 5000, "device"},
	BandSystem:        {5001, 6000, "system"},
	BandAuthorization: {6001, 7000, "authorization"},
	BandTranslation:   {7001, 8000, "translation"},
}

// Bands returns every known band in ascending numeric order, excluding
// BandUnknown.
func Bands() []Band {
	return []Band{
		BandIO, BandMessaging, BandPersistence, BandDevice,
		BandSystem, BandAuthorization, BandTranslation,
	}
}

// BandOf returns the band c falls into, or BandUnknown.
func BandOf(c Code) Band {
	for b := BandIO; int(b) < len(bands); b++ {
		if b.Contains(c) {
			return b
		}
	}
	return BandUnknown
}

// ParseBand resolves a band by its lowercase name ("io", "messaging", ...).
func ParseBand(s string) (Band, bool) {
	for b := BandIO; int(b) < len(bands); b++ {
		if bands[b].name == s {
			return b, true
		}
	}
	return BandUnknown, false
}

// Contains reports whether c lies inside the band's inclusive range.
// BandUnknown contains nothing.
func (b Band) Contains(c Code) bool {
	if b == BandUnknown || int(b) >= len(bands) {
		return false
	}
	r := bands[b]
	return c >= r.lo && c <= r.hi
}

// Range returns the inclusive bounds of the band.
func (b Band) Range() (lo, hi Code) {
	if int(b) >= len(bands) {
		return 0, 0
	}
	r := bands[b]
	return r.lo, r.hi
}

// String returns the lowercase band name.
func (b Band) String() string {
	if int(b) >= len(bands) {
		return bands[BandUnknown].name
	}
	return bands[b].name
}
