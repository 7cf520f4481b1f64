// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/tidwall/gjson"
)

// EnvDelim overrides the "," separating filter expressions.
const EnvDelim = "EULERCTL_FILTER_DELIM"

// filterRegex splits an expression into key, operator and target. Operators
// are one of = ^ ~ < > @ or /, optionally prefixed with '!'.
var filterRegex = regexp.MustCompile(`^(.*?)(!?[=^~<>@/])(.*)$`)

// Filter represents a single parsed --filter expression including the key,
// operand, optional negation and target value.
type Filter struct {
	Key     string
	Negate  bool
	Operand string
	Target  string
}

// BuildFilters parses a filter specification string into a slice of Filter.
// Malformed expressions are skipped.
func BuildFilters(spec string) []Filter {
	//nolint:prealloc
	var filters []Filter

	if spec == "" {
		return filters
	}

	delim := ","
	if d, ok := os.LookupEnv(EnvDelim); ok && d != "" {
		delim = d
	}

	for _, filterSpec := range strings.Split(spec, delim) {
		parts := filterRegex.FindStringSubmatch(strings.TrimSpace(filterSpec))
		if parts == nil || parts[1] == "" {
			log.Error("invalid filter: " + filterSpec)
			continue
		}

		negate := strings.HasPrefix(parts[2], "!")
		filters = append(filters, Filter{
			Key:     strings.TrimSpace(parts[1]),
			Negate:  negate,
			Operand: strings.TrimPrefix(parts[2], "!"),
			Target:  parts[3],
		})
	}

	return filters
}

// Match reports whether doc, a JSON object, satisfies every filter. A filter
// naming a key absent from doc rejects it.
func Match(doc gjson.Result, filters []Filter) bool {
	for _, filter := range filters {
		value := doc.Get(filter.Key)
		if !value.Exists() {
			log.Debugf("filter key not found: %s", filter.Key)
			return false
		}

		var ok bool
		switch value.Type {
		case gjson.Number:
			ok = checkNumericOperand(value.Float(), filter)
		case gjson.JSON:
			ok = checkContainsOperand(value, filter)
		default:
			ok = checkStringOperand(value.String(), filter)
		}
		if !ok {
			return false
		}
	}
	return true
}

// checkContainsOperand evaluates a membership style filter (operand '@')
// against array or object values.
func checkContainsOperand(value gjson.Result, filter Filter) bool {
	if filter.Operand != "@" {
		log.Error(fmt.Sprintf("unsupported operand %q for %s", filter.Operand, filter.Key))
		return false
	}

	found := false
	if value.IsArray() {
		for _, item := range value.Array() {
			if item.String() == filter.Target {
				found = true
				break
			}
		}
	} else {
		found = value.Get(gjson.Escape(filter.Target)).Exists()
	}
	return found == !filter.Negate
}

// checkNumericOperand compares a numeric value against the filter target. A
// target that is not a number falls back to string comparison.
func checkNumericOperand(value float64, filter Filter) bool {
	tgt, err := strconv.ParseFloat(strings.TrimSpace(filter.Target), 64)
	if err != nil {
		return checkStringOperand(strconv.FormatFloat(value, 'f', -1, 64), filter)
	}

	switch filter.Operand {
	case "=":
		return (value == tgt) == !filter.Negate
	case ">":
		return (value > tgt) == !filter.Negate
	case "<":
		return (value < tgt) == !filter.Negate
	default:
		return checkStringOperand(strconv.FormatFloat(value, 'f', -1, 64), filter)
	}
}

// checkStringOperand evaluates a string comparison style filter against the
// provided value using the operand semantics.
func checkStringOperand(value string, filter Filter) bool {
	switch filter.Operand {
	case "=":
		return value == filter.Target == !filter.Negate
	case "~":
		return strings.EqualFold(value, filter.Target) == !filter.Negate
	case "^":
		return strings.HasPrefix(value, filter.Target) == !filter.Negate
	case ">":
		return value > filter.Target == !filter.Negate
	case "<":
		return value < filter.Target == !filter.Negate
	case "@":
		return strings.Contains(value, filter.Target) == !filter.Negate
	case "/":
		matched, err := regexp.MatchString(filter.Target, value)
		if err != nil {
			log.Error("invalid regex: " + filter.Target)
			return false
		}
		return matched == !filter.Negate
	default:
		log.Error("unsupported filtering operand: " + filter.Operand)
		return false
	}
}
