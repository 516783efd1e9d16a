package util

import (
	"encoding/binary"
	"errors"
	"io"
	"reflect"
)

// PackStruct writes fixed-size struct fields to buf in declaration order (BigEndian).
func PackStruct(buf io.Writer, data interface{}) error {
	rv := reflect.ValueOf(data)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.New("data is invalid (nil or non-pointer)")
	}
	val := rv.Elem()
	if val.Kind() != reflect.Struct {
		return errors.New("data is not a pointer to a struct")
	}
	for i := 0; i < val.NumField(); i++ {
		if err := binary.Write(buf, binary.BigEndian, val.Field(i).Interface()); err != nil {
			return err
		}
	}
	return nil
}
