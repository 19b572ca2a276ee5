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

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type staticSessionProvider struct {
	sess session.Session
	err  error
}

func (p *staticSessionProvider) NewSession(ctx *gctx.Context, uid int64, jwtData map[string]string, sessData map[string]any) (session.Session, error) {
	return nil, nil
}

func (p *staticSessionProvider) Get(ctx *gctx.Context) (session.Session, error) {
	return p.sess, p.err
}

func (p *staticSessionProvider) Destroy(ctx *gctx.Context) error {
	return nil
}

func (p *staticSessionProvider) UpdateClaims(ctx *gctx.Context, claims session.Claims) error {
	return nil
}

func (p *staticSessionProvider) RenewAccessToken(ctx *gctx.Context) error {
	return nil
}

func TestCheckRole(t *testing.T) {
	testCases := []struct {
		name     string
		sp       session.Provider
		wantCode int
	}{
		{
			name: "角色在白名单内",
			sp: &staticSessionProvider{
				sess: session.NewMemorySession(session.Claims{
					Uid: 2051,
					Data: map[string]string{
						"role": "hr_admin",
					},
				}),
			},
			wantCode: 200,
		},
		{
			name: "角色不在白名单内",
			sp: &staticSessionProvider{
				sess: session.NewMemorySession(session.Claims{
					Uid: 2052,
					Data: map[string]string{
						"role": "hr_team",
					},
				}),
			},
			wantCode: 403,
		},
		{
			name: "claims里没有角色",
			sp: &staticSessionProvider{
				sess: session.NewMemorySession(session.Claims{
					Uid: 2053,
				}),
			},
			wantCode: 403,
		},
		{
			name: "未登录",
			sp: &staticSessionProvider{
				err: errors.New("mock: 没有 session"),
			},
			wantCode: 401,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/positions/approve", nil)

			builder := NewCheckRoleMiddlewareBuilder("hr_admin", "hiring_manager")
			builder.sp = tc.sp
			hdl := builder.Build()
			hdl(c)
			assert.Equal(t, tc.wantCode, c.Writer.Status())
		})
	}
}
