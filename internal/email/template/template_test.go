// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package template

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		typ       Type
		vars      map[string]string
		assertRes func(t *testing.T, res Rendered)
		wantErr   error
	}{
		{
			name: "简历收到通知",
			typ:  TypeApplicationReceived,
			vars: map[string]string{
				"candidateName": "Alice",
				"position":      "Analyst",
				"companyName":   "Meoying",
			},
			assertRes: func(t *testing.T, res Rendered) {
				assert.Contains(t, res.Subject, "Analyst")
				assert.Contains(t, res.Body, "Alice")
				assert.NotContains(t, res.Body, "{candidateName}")
				assert.NotContains(t, res.Subject, "{position}")
			},
		},
		{
			name: "变量为空时占位符原样保留",
			typ:  TypeApplicationReceived,
			vars: map[string]string{},
			assertRes: func(t *testing.T, res Rendered) {
				tmpl := catalog[TypeApplicationReceived]
				assert.Equal(t, tmpl.Subject, res.Subject)
				assert.Equal(t, tmpl.Body, res.Body)
			},
		},
		{
			name: "没有匹配到的占位符不替换也不报错",
			typ:  TypeInterviewInvitation,
			vars: map[string]string{
				"candidateName": "Bob",
				"position":      "Go 开发工程师",
			},
			assertRes: func(t *testing.T, res Rendered) {
				assert.Contains(t, res.Body, "Bob")
				assert.Contains(t, res.Body, "{interviewDate}")
				assert.Contains(t, res.Body, "{location}")
			},
		},
		{
			name: "custom 类型透传",
			typ:  TypeCustom,
			vars: map[string]string{
				"subject": "主题 {x}",
				"body":    "正文 {x}",
			},
			assertRes: func(t *testing.T, res Rendered) {
				// 透传模式不做任何替换
				assert.Equal(t, "主题 {x}", res.Subject)
				assert.Equal(t, "正文 {x}", res.Body)
			},
		},
		{
			name:    "未知模板类型",
			typ:     Type("nonexistent"),
			vars:    map[string]string{},
			wantErr: ErrUnknownTemplate,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Render(tc.typ, tc.vars)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr == nil {
				tc.assertRes(t, res)
			}
		})
	}
}

func TestSubstituteReplacesAllOccurrences(t *testing.T) {
	t.Parallel()
	res := substitute("{x} and {x}", map[string]string{"x": "A"})
	assert.Equal(t, "A and A", res)
}

func TestCatalogPlaceholdersAreWellFormed(t *testing.T) {
	t.Parallel()
	// 目录里每个左花括号都应该有配对的右花括号，避免模板手误
	for typ, tmpl := range catalog {
		for _, text := range []string{tmpl.Subject, tmpl.Body} {
			require.Equal(t, strings.Count(text, "{"), strings.Count(text, "}"),
				"模板 %s 的占位符不配对", typ)
		}
	}
}

func TestTypeIsValid(t *testing.T) {
	t.Parallel()
	assert.True(t, TypeJobOffer.IsValid())
	assert.True(t, TypeCustom.IsValid())
	assert.False(t, Type("whatever").IsValid())
}
