// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package affix reduces Esperanto words to an approximate root by stripping
// a fixed table of known prefixes and suffixes.
//
// Stripping happens in passes:
//  1. Each prefix in the table is removed if the word starts with it.
//  2. Each suffix in the table is removed if the word ends with it, optionally
//     followed by up to two linking characters (a, e, i, o, u, ŭ or j).
//  3. Passes repeat until nothing more is removed.
//  4. A final grammatical ending (a, i, o or e, optionally followed by j) is
//     removed.
//
// A removal that would leave an empty word is skipped. Matching is case
// insensitive and the surviving runes keep their original case.
//
// This is not a morphological analyzer. Irregular words and compounds are
// not handled and the result is only an approximation of the root.
package affix
