package unzip_test

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/KretovDmitry/ordrin-go/pkg/unzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse(t *testing.T) {
	mockData := []byte(`{"msg":"ok"}`)

	tests := []struct {
		contentEncoding string
		payload         []byte
	}{
		{
			contentEncoding: "gzip",
			payload:         compress(mockData),
		},
		{
			contentEncoding: "",
			payload:         mockData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.contentEncoding, func(t *testing.T) {
			res := &http.Response{
				Header: make(http.Header),
				Body:   io.NopCloser(bytes.NewReader(tt.payload)),
			}
			res.Header.Set("Content-Encoding", tt.contentEncoding)

			require.NoError(t, unzip.Response(res))

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)
			require.NoError(t, res.Body.Close())
			assert.Equal(t, mockData, body)
		})
	}
}

func TestResponseCorrupted(t *testing.T) {
	res := &http.Response{
		Header: http.Header{"Content-Encoding": []string{"gzip"}},
		Body:   io.NopCloser(strings.NewReader("not gzip")),
	}
	assert.Error(t, unzip.Response(res))
}

func compress(data []byte) []byte {
	var b bytes.Buffer
	wr := gzip.NewWriter(&b)
	_, err := wr.Write(data)
	if err != nil {
		panic(err)
	}
	wr.Close() // DO NOT DEFER HERE

	return b.Bytes()
}
