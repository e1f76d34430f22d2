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

import (
	"fmt"
	"sort"
	"strings"
)

const FileExtension = ".rdp"

// SettingType is the type marker between key and value in a .rdp line.
type SettingType string

const (
	TypeInt    SettingType = "i"
	TypeString SettingType = "s"
)

// Names of the two settings filled per host.
const (
	SettingFullAddress = "full address"
	SettingGateway     = "gatewayhostname"
)

// Setting is one "name:type:value" line.
type Setting struct {
	Name  string
	Type  SettingType
	Value string
}

func (s Setting) String() string {
	return s.Name + ":" + string(s.Type) + ":" + s.Value
}

// Document is an ordered list of settings; order is significant to clients.
type Document []Setting

// String renders one line per setting, each terminated by "\n".
func (d Document) String() string {
	var b strings.Builder
	for _, s := range d {
		b.WriteString(s.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Get returns the setting named name.
func (d Document) Get(name string) (Setting, bool) {
	for _, s := range d {
		if s.Name == name {
			return s, true
		}
	}
	return Setting{}, false
}

// DefaultSettings returns a fresh copy of the connection template. The
// full address and gateway values are empty until rendered.
func DefaultSettings() Document {
	return Document{
		{"screen mode id", TypeInt, "2"},
		{"use multimon", TypeInt, "0"},
		{"desktopwidth", TypeInt, "1920"},
		{"desktopheight", TypeInt, "1080"},
		{"session bpp", TypeInt, "32"},
		{"winposstr", TypeString, "0,3,0,0,800,600"},
		{"compression", TypeInt, "1"},
		{"keyboardhook", TypeInt, "2"},
		{"audiocapturemode", TypeInt, "0"},
		{"videoplaybackmode", TypeInt, "1"},
		{"connection type", TypeInt, "7"},
		{"networkautodetect", TypeInt, "1"},
		{"bandwidthautodetect", TypeInt, "1"},
		{"displayconnectionbar", TypeInt, "1"},
		{"enableworkspacereconnect", TypeInt, "0"},
		{"disable wallpaper", TypeInt, "0"},
		{"allow font smoothing", TypeInt, "0"},
		{"allow desktop composition", TypeInt, "0"},
		{"disable full window drag", TypeInt, "1"},
		{"disable menu anims", TypeInt, "1"},
		{"disable themes", TypeInt, "0"},
		{"disable cursor setting", TypeInt, "0"},
		{"bitmapcachepersistenable", TypeInt, "1"},
		{SettingFullAddress, TypeString, ""},
		{"audiomode", TypeInt, "0"},
		{"redirectprinters", TypeInt, "1"},
		{"redirectcomports", TypeInt, "0"},
		{"redirectsmartcards", TypeInt, "1"},
		{"redirectclipboard", TypeInt, "1"},
		{"redirectposdevices", TypeInt, "0"},
		{"drivestoredirect", TypeString, ""},
		{"autoreconnection enabled", TypeInt, "1"},
		{"authentication level", TypeInt, "2"},
		{"prompt for credentials", TypeInt, "1"},
		{"negotiate security layer", TypeInt, "1"},
		{"remoteapplicationmode", TypeInt, "0"},
		{"alternate shell", TypeString, ""},
		{"shell working directory", TypeString, ""},
		{SettingGateway, TypeString, ""},
		{"gatewayusagemethod", TypeInt, "2"},
		{"gatewaycredentialssource", TypeInt, "4"},
		{"gatewayprofileusagemethod", TypeInt, "1"},
		{"promptcredentialonce", TypeInt, "1"},
		{"gatewaybrokeringtype", TypeInt, "0"},
		{"use redirection server name", TypeInt, "0"},
		{"rdgiskdcproxy", TypeInt, "0"},
		{"kdcproxyname", TypeString, ""},
	}
}

// Template is the connection template with overrides applied, ready to be
// rendered once per host.
type Template struct {
	base Document
}

// NewTemplate applies overrides to the default settings. Every override
// must name an existing setting other than the two per-host ones.
func NewTemplate(overrides map[string]string) (*Template, error) {
	base := DefaultSettings()
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if name == SettingFullAddress || name == SettingGateway {
			return nil, NewError(CodeInvalidOverride, fmt.Sprintf("%q is set per host and cannot be overridden", name), nil)
		}
		found := false
		for i := range base {
			if base[i].Name == name {
				base[i].Value = overrides[name]
				found = true
				break
			}
		}
		if !found {
			return nil, NewError(CodeInvalidOverride, fmt.Sprintf("unknown setting %q", name), nil)
		}
	}
	return &Template{base: base}, nil
}

// Render fills the per-host values into a copy of the template.
func (t *Template) Render(fqdn, gateway string) Document {
	doc := make(Document, len(t.base))
	copy(doc, t.base)
	for i := range doc {
		switch doc[i].Name {
		case SettingFullAddress:
			doc[i].Value = fqdn
		case SettingGateway:
			doc[i].Value = gateway
		}
	}
	return doc
}
