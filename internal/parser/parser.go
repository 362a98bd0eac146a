package parser

import (
	"bytes"
	stderrors "errors" // Standard errors package
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"

	"github.com/mcncl/jsontree/internal/errors" // Custom errors package
	"github.com/mcncl/jsontree/internal/value"
)

// numberGrammar is the RFC 8259 number production. json-iterator reads
// numbers loosely, so the lexeme is checked here before it becomes a decimal.
var numberGrammar = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

var api = jsoniter.Config{UseNumber: true}.Froze()

// Parse reads exactly one JSON document from reader and converts it into a
// value tree. Numbers keep their exact decimal value. When an object repeats
// a key the last occurrence wins.
func Parse(reader io.Reader) (value.Value, error) {
	return decode(jsoniter.Parse(api, reader, 4096))
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (value.Value, error) {
	if strings.TrimSpace(jsonString) == "" {
		return nil, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	return decode(jsoniter.ParseString(api, jsonString))
}

// ParseBytes parses JSON from a byte slice
func ParseBytes(data []byte) (value.Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.NewInputError("input is empty", errors.ErrEmptyInput)
	}
	return decode(jsoniter.ParseBytes(api, data))
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (value.Value, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	stat, err := file.Stat()
	if err != nil {
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return nil, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(file)
}

func decode(iter *jsoniter.Iterator) (value.Value, error) {
	if iter.WhatIsNext() == jsoniter.InvalidValue && stderrors.Is(iter.Error, io.EOF) {
		return nil, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
	}

	root := readValue(iter)
	if failed(iter) {
		return nil, errors.NewParsingError(iter.Error.Error(), errors.ErrInvalidJSON)
	}

	// Anything but end of input after the root is an error.
	next := iter.WhatIsNext()
	if failed(iter) {
		return nil, errors.NewParsingError(iter.Error.Error(), errors.ErrInvalidJSON)
	}
	if iter.Error == nil {
		if next != jsoniter.InvalidValue {
			return nil, errors.NewParsingError("multiple JSON values found at the root", errors.ErrMultipleJSON)
		}
		return nil, errors.NewParsingError("invalid trailing data after first JSON value", errors.ErrInvalidJSON)
	}
	return root, nil
}

// failed reports a real error; io.EOF only means the input was consumed.
func failed(iter *jsoniter.Iterator) bool {
	return iter.Error != nil && !stderrors.Is(iter.Error, io.EOF)
}

func readValue(iter *jsoniter.Iterator) value.Value {
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
		return value.Null()
	case jsoniter.BoolValue:
		return value.Bool(iter.ReadBool())
	case jsoniter.NumberValue:
		return readNumber(iter)
	case jsoniter.StringValue:
		return value.String(readString(iter))
	case jsoniter.ArrayValue:
		items := []value.Value{}
		iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
			items = append(items, readValue(iter))
			return !failed(iter)
		})
		return value.Array(items...)
	case jsoniter.ObjectValue:
		fields := map[string]value.Value{}
		iter.ReadMapCB(func(iter *jsoniter.Iterator, key string) bool {
			if !utf8.ValidString(key) {
				iter.ReportError("readObject", "invalid UTF-8 in object key")
				return false
			}
			fields[key] = readValue(iter)
			return !failed(iter)
		})
		return value.Assoc(fields)
	}
	if !failed(iter) {
		iter.ReportError("readValue", "expected a JSON value")
	}
	return value.Null()
}

// readString only accepts well-formed UTF-8, so every string in a tree
// prints back to bytes the parser accepts.
func readString(iter *jsoniter.Iterator) string {
	s := iter.ReadString()
	if !failed(iter) && !utf8.ValidString(s) {
		iter.ReportError("readString", "invalid UTF-8 in string")
	}
	return s
}

func readNumber(iter *jsoniter.Iterator) value.Value {
	lexeme := iter.ReadNumber().String()
	if failed(iter) {
		return value.Null()
	}
	if !numberGrammar.MatchString(lexeme) {
		iter.ReportError("readNumber", fmt.Sprintf("malformed number %q", lexeme))
		return value.Null()
	}
	n, err := value.NumberFromString(lexeme)
	if err != nil {
		iter.ReportError("readNumber", err.Error())
		return value.Null()
	}
	return n
}
