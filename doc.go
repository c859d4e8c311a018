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

// Package espdic implements searching the ESPDIC Esperanto-English
// dictionary in pure Go.
//
// ESPDIC is a flat UTF-8 text file with one entry per line:
//
//	Esperanto : English, English, English...
//
// A Dictionary is loaded once and can then be searched many times. Each
// search matches the query against the Esperanto headwords using one of the
// modes in package match, optionally after stripping known affixes from the
// query with package affix so that it approximates the word's root.
//
// The dictionary file can be stored as plain text, gzip (.gz) or dictzip
// (.dz). Use package fetch to download the file on first use.
//
// The dictionary is published at this URL:
// http://www.denisowski.org/Esperanto/ESPDIC/espdic.txt
package espdic
