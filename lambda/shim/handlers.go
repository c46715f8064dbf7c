// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shim

import (
	"fmt"
	"strings"
)

// HandlerTable maps exported handler names to the native function each
// one invokes. It is generated together with the native library.
type HandlerTable map[string]string

// ParseHandlerTable parses "handler=function" pairs separated by commas.
func ParseHandlerTable(value string) (HandlerTable, error) {
	table := HandlerTable{}
	for _, pair := range strings.Split(value, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		handler, function, ok := strings.Cut(pair, "=")
		if !ok || handler == "" || function == "" {
			return nil, fmt.Errorf("invalid handler mapping %q, expected handler=function", pair)
		}
		if _, exists := table[handler]; exists {
			return nil, fmt.Errorf("duplicate handler mapping for %q", handler)
		}
		table[handler] = function
	}
	return table, nil
}

// Resolve returns the native function for a _HANDLER value. The value may
// carry a module prefix, as in "index.main_hello".
func (t HandlerTable) Resolve(handler string) (string, error) {
	if function, ok := t[handler]; ok {
		return function, nil
	}
	if i := strings.LastIndex(handler, "."); i >= 0 {
		if function, ok := t[handler[i+1:]]; ok {
			return function, nil
		}
	}
	return "", &UnknownHandlerError{Handler: handler}
}
