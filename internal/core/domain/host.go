// Copyright 2025.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

import "strings"

// Host is one spreadsheet row: the raw name and its qualified form.
// The raw name is kept so file names never depend on suffix stripping.
type Host struct {
	Name string
	FQDN string
}

// Qualify appends suffix to name verbatim; no separator is inserted.
func Qualify(name, suffix string) Host {
	return Host{Name: name, FQDN: name + suffix}
}

// QualifyAll qualifies names in order.
func QualifyAll(names []string, suffix string) []Host {
	hosts := make([]Host, 0, len(names))
	for _, n := range names {
		hosts = append(hosts, Qualify(n, suffix))
	}
	return hosts
}

// StripSuffix recovers the host name from a qualified name. With an empty
// suffix, or one fqdn does not end with, fqdn is returned unchanged.
func StripSuffix(fqdn, suffix string) string {
	return strings.TrimSuffix(fqdn, suffix)
}

// FileName is the name of the connection file written for h.
func (h Host) FileName() string {
	return h.Name + FileExtension
}
