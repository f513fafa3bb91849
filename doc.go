/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

/*
Package xcdf is a small expression compiler and evaluator for filtering
and computing over rows of a typed, columnar event record stream.

A caller supplies an arithmetic/logical expression as a string, such as
"(energy > 10.) && any(zenith < 0.5)"; xcdf parses it against the
schema exposed by a bound record source, compiles it into a typed node
graph whose leaves are record fields, and evaluates that graph once per
record — either as a boolean event filter or as a numerical projection
for histogram filling.

# Core packages

• expr - the tokenizer, parser, and typed node graph at the center of
the module; see [expr.Compile] and [expr.EventSelect].

• memsource - a minimal in-memory RecordSource, useful for tests and
small scripts, loadable from a YAML schema/fixture file.

• histogram - 1-D and 2-D histogram containers that accept the
numerical values an expr.Expression produces.

# Getting started

	package main

	import (
		"fmt"

		"github.com/hayalaso/xcdf/expr"
		"github.com/hayalaso/xcdf/memsource"
	)

	func main() {
		source, _ := memsource.FromYAMLFile("events.yaml")

		e, err := expr.Compile("sqrt(v) / n", source)
		if err != nil {
			panic(err)
		}

		for source.Read() {
			for i := uint32(0); i < e.Size(); i++ {
				fmt.Println(e.Get(i))
			}
		}
	}

# Event selection

[expr.EventSelect] wraps a compiled expression as a boolean filter: it
compiles once, then for every row reduces the root node's first element
to a truth value, rejecting rows whose root has size 0.

	sel, err := expr.NewEventSelect("n == 3 && all(v >= 1.0)", source)
	if err != nil {
		panic(err)
	}
	for source.Read() {
		if sel.Select() {
			// keep this event
		}
	}

# Logging

xcdf reuses the logger package's leveled Logger for compile-time
tracing (compile start, tokenizer retries, compile failures):

	logger.SetDefault(logger.NewLogger(logger.DEBUG, os.Stdout))

Production callers typically discard it:

	logger.SetDefault(logger.NewDiscardLogger())
*/
package xcdf
