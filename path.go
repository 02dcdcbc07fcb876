package oaskema

import (
	"fmt"
	"strconv"
	"strings"
)

// pathRef builds JSON Pointer paths into the output document. It is
// immutable; Field and Index return extended copies.
type pathRef struct {
	parts []string
}

var rootPath = pathRef{}

func (p pathRef) Field(name string) pathRef {
	if name == "" {
		return p
	}
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return pathRef{parts: append(append([]string{}, p.parts...), esc)}
}

func (p pathRef) Index(i int) pathRef {
	return pathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

func (p pathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

// fail builds an UnconvertibleError located at p.
func (p pathRef) fail(code string, n Node, cause error, kv ...any) *UnconvertibleError {
	params := map[string]string{}
	for i := 0; i+1 < len(kv); i += 2 {
		params[fmt.Sprint(kv[i])] = fmt.Sprint(kv[i+1])
	}
	return &UnconvertibleError{
		Path:    p.Pointer(),
		Code:    code,
		Message: message(code, params),
		Node:    n,
		Params:  params,
		Cause:   cause,
	}
}
