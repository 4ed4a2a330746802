package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/dom/securecart/internal/domain"
	"github.com/dom/securecart/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmin_Gate(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, adminCookie := testutil.NewUserBuilder().AsAdmin().BuildAndSignIn(t, ts)
	_, userCookie := testutil.NewUserBuilder().BuildAndSignIn(t, ts)

	tests := []struct {
		name           string
		cookie         *http.Cookie
		expectedStatus int
	}{
		{
			name:           "admin session accepted",
			cookie:         adminCookie,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "non-admin session rejected",
			cookie:         userCookie,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "no session rejected",
			cookie:         nil,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "garbage session rejected",
			cookie:         &http.Cookie{Name: "sc-auth-session", Value: "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz"},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.Get(t, "/adminpanel/products", tt.cookie)
			resp.Body.Close()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestAdmin_ProductManagement(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, adminCookie := testutil.NewUserBuilder().AsAdmin().BuildAndSignIn(t, ts)

	// Add a product through the multipart form.
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", "widget.jpg")
	require.NoError(t, err)
	part.Write([]byte("fake image bytes"))
	mw.WriteField("title", "Widget")
	mw.WriteField("description", "A very good widget")
	mw.WriteField("cost", "19.99")
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, ts.URL("/adminpanel/products"), &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.AddCookie(adminCookie)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var created domain.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "Widget", created.Title)
	assert.True(t, created.Listed)
	assert.NotEqual(t, "widget.jpg", created.ImageName, "stored name must be generated, not client-supplied")

	// The upload landed on disk under the generated name.
	_, err = os.Stat(filepath.Join(ts.Config.ImageDir, created.ImageName))
	assert.NoError(t, err)

	idValue := url.Values{"id": {strconv.FormatUint(uint64(created.ID), 10)}}

	// Unlist hides it from the storefront.
	resp = ts.PostForm(t, "/adminpanel/products/unlist", idValue, adminCookie)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var product domain.Product
	require.NoError(t, ts.DB.DB.First(&product, created.ID).Error)
	assert.False(t, product.Listed)

	// Relist brings it back.
	resp = ts.PostForm(t, "/adminpanel/products/relist", idValue, adminCookie)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, ts.DB.DB.First(&product, created.ID).Error)
	assert.True(t, product.Listed)

	// Remove deletes the row and the image file.
	resp = ts.PostForm(t, "/adminpanel/products/remove", idValue, adminCookie)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	err = ts.DB.DB.First(&product, created.ID).Error
	assert.Error(t, err)
	_, err = os.Stat(filepath.Join(ts.Config.ImageDir, created.ImageName))
	assert.True(t, os.IsNotExist(err))
}
