// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package px

import (
	"encoding"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
)

var (
	durationType        = reflect.TypeOf(time.Duration(0))
	urlType             = reflect.TypeOf(url.URL{})
	semverType          = reflect.TypeOf(semver.Version{})
	uuidType            = reflect.TypeOf(uuid.UUID{})
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// Convert converts a raw token to T.
//
// String kinds are taken verbatim. Booleans, integers and floats use strconv
// sized to T. Integers are base 10 only; floats follow strconv.ParseFloat and
// so also accept "NaN", "inf" and hex forms such as "0x1p4".
// time.Duration, url.URL, semver.Version and uuid.UUID use their package
// parsers, and any type whose pointer implements encoding.TextUnmarshaler
// uses UnmarshalText. Pointer types are allocated and filled with the
// converted element. The whole token must be consumed; anything else is
// reported as a *ConversionError.
func Convert[T any](raw string) (T, error) {
	var out T
	if s, ok := any(&out).(*string); ok {
		*s = raw
		return out, nil
	}
	if err := setValue(reflect.ValueOf(&out).Elem(), raw); err != nil {
		return out, &ConversionError{
			Raw:  raw,
			Type: reflect.TypeFor[T]().String(),
			Err:  err,
		}
	}
	return out, nil
}

// setValue sets v from raw using the textual form of v's type.
func setValue(v reflect.Value, raw string) error {
	switch v.Type() {
	case durationType:
		d, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil

	case urlType:
		u, err := url.Parse(raw)
		if err != nil {
			return err
		}
		v.Set(reflect.ValueOf(*u))
		return nil

	case semverType:
		sv, err := semver.NewVersion(raw)
		if err != nil {
			return err
		}
		v.Set(reflect.ValueOf(*sv))
		return nil

	case uuidType:
		id, err := uuid.Parse(raw)
		if err != nil {
			return err
		}
		v.Set(reflect.ValueOf(id))
		return nil
	}

	if v.Kind() != reflect.Ptr && reflect.PointerTo(v.Type()).Implements(textUnmarshalerType) {
		return v.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(raw))
	}

	switch v.Kind() {
	case reflect.String:
		v.SetString(raw)
		return nil

	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		v.SetBool(b)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(raw, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := strconv.ParseUint(raw, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
		return nil

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
		return nil

	case reflect.Ptr:
		elem := reflect.New(v.Type().Elem())
		if err := setValue(elem.Elem(), raw); err != nil {
			return err
		}
		v.Set(elem)
		return nil

	default:
		return fmt.Errorf("unsupported type %s", v.Type())
	}
}
