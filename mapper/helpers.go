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

package mapper

import (
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
)

// freezeHTTP makes an immutable copy of an HTTP rule map, validating every
// status on the way. Empty maps are normalized to nil.
func freezeHTTP[K comparable](kind string, src map[K]int) (map[K]int, error) {
	if len(src) == 0 {
		return nil, nil
	}
	dst := make(map[K]int, len(src))
	for k, v := range src {
		if err := validHTTP(v); err != nil {
			return nil, fmt.Errorf("mapper: %s HTTP rule for %v: %w", kind, k, err)
		}
		dst[k] = v
	}
	return dst, nil
}

// freezeGRPC makes an immutable copy of a gRPC rule map, converting
// builder-style int values into typed gRPC codes.
func freezeGRPC[K comparable](kind string, src map[K]int) (map[K]codes.Code, error) {
	if len(src) == 0 {
		return nil, nil
	}
	dst := make(map[K]codes.Code, len(src))
	for k, v := range src {
		if err := validGRPC(v); err != nil {
			return nil, fmt.Errorf("mapper: %s gRPC rule for %v: %w", kind, k, err)
		}
		dst[k] = codes.Code(v)
	}
	return dst, nil
}

// validHTTP accepts the 4xx and 5xx classes only: an error must never be
// reported with a success status.
func validHTTP(v int) error {
	if v < 400 || v > 599 {
		return fmt.Errorf("status %d is not an error status", v)
	}
	return nil
}

// validGRPC accepts the canonical codes except OK.
func validGRPC(v int) error {
	if v <= int(codes.OK) || v > int(codes.Unauthenticated) {
		return fmt.Errorf("code %d is not a gRPC error code", v)
	}
	return nil
}

func grpcName(c codes.Code) string {
	return fmt.Sprintf("%s(%d)", strings.ToUpper(c.String()), int(c))
}
