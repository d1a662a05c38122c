// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package functions

import (
	"fmt"
	"reflect"
	"strings"
)

// Join formats every element of list and joins them with sep.
func Join(sep string, list any) (string, error) {
	if list == nil {
		return "", nil
	}

	listType := reflect.TypeOf(list).Kind()
	switch listType {
	case reflect.Slice, reflect.Array:
		reflectedList := reflect.ValueOf(list)
		elements := make([]string, reflectedList.Len())
		for i := range reflectedList.Len() {
			elements[i] = castToString(reflectedList.Index(i).Interface())
		}

		return strings.Join(elements, sep), nil
	default:
		return "", fmt.Errorf("cannot join type %s", listType.String())
	}
}

func First(list any) (any, error) {
	if list == nil {
		return nil, nil
	}

	listType := reflect.TypeOf(list).Kind()
	switch listType {
	case reflect.Slice, reflect.Array:
		reflectedList := reflect.ValueOf(list)
		if reflectedList.Len() == 0 {
			return nil, nil
		}
		return reflectedList.Index(0).Interface(), nil
	case reflect.String:
		str := []rune(reflect.ValueOf(list).String())
		if len(str) == 0 {
			return nil, nil
		}
		return string(str[0]), nil
	default:
		return nil, fmt.Errorf("cannot find first element of type %s", listType.String())
	}
}

func Last(list any) (any, error) {
	if list == nil {
		return nil, nil
	}

	listType := reflect.TypeOf(list).Kind()
	switch listType {
	case reflect.Slice, reflect.Array:
		reflectedList := reflect.ValueOf(list)
		length := reflectedList.Len()
		if length == 0 {
			return nil, nil
		}
		return reflectedList.Index(length - 1).Interface(), nil
	case reflect.String:
		str := []rune(reflect.ValueOf(list).String())
		length := len(str)
		if length == 0 {
			return nil, nil
		}
		return string(str[length-1]), nil
	default:
		return nil, fmt.Errorf("cannot find last element of type %s", listType.String())
	}
}
