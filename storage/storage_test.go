package storage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var filenamePattern = regexp.MustCompile(`^(\d+)-(\d+)(\.\w+)$`)

func TestUniqueFilename_Shape(t *testing.T) {
	name := UniqueFilename("product photo.png")

	m := filenamePattern.FindStringSubmatch(name)
	require.NotNil(t, m, "unexpected filename %q", name)

	millis, err := strconv.ParseInt(m[1], 10, 64)
	require.NoError(t, err)
	now := time.Now().UnixMilli()
	assert.InDelta(t, now, millis, 5000)

	suffix, err := strconv.Atoi(m[2])
	require.NoError(t, err)
	assert.GreaterOrEqual(t, suffix, 0)
	assert.LessOrEqual(t, suffix, 1000)

	assert.Equal(t, ".png", m[3])
}

func TestUniqueFilename_KeepsExtension(t *testing.T) {
	assert.True(t, strings.HasSuffix(UniqueFilename("a.jpeg"), ".jpeg"))
	assert.True(t, strings.HasSuffix(UniqueFilename("archive.tar.gz"), ".gz"))
}

func TestUniqueFilename_NoExtension(t *testing.T) {
	name := UniqueFilename("README")
	assert.NotContains(t, name, ".")
}

func TestSaveUpload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := filepath.Join(t.TempDir(), "images")

	var saved string
	r := gin.New()
	r.POST("/upload", func(c *gin.Context) {
		file, err := c.FormFile("image")
		require.NoError(t, err)
		saved, err = SaveUpload(c, file, dir)
		require.NoError(t, err)
		c.Status(http.StatusOK)
	})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("image", "hat.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("not really a jpeg"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	require.NotEmpty(t, saved)
	assert.True(t, strings.HasSuffix(saved, ".jpg"))
	content, err := os.ReadFile(filepath.Join(dir, saved))
	require.NoError(t, err)
	assert.Equal(t, "not really a jpeg", string(content))
}
