package cloudinary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePublicID(t *testing.T) {
	cases := []struct {
		url          string
		publicID     string
		resourceType string
	}{
		{
			url:          "https://res.cloudinary.com/demo/video/upload/v1712345678/folder/clip.mp4",
			publicID:     "folder/clip",
			resourceType: "video",
		},
		{
			url:          "https://res.cloudinary.com/demo/image/upload/avatar.png",
			publicID:     "avatar",
			resourceType: "image",
		},
		{
			url:          "https://res.cloudinary.com/demo/image/upload/v99/deep/nested/thumb.webp",
			publicID:     "deep/nested/thumb",
			resourceType: "image",
		},
	}
	for _, tc := range cases {
		publicID, resourceType, err := parsePublicID(tc.url)
		assert.NoError(t, err, tc.url)
		assert.Equal(t, tc.publicID, publicID)
		assert.Equal(t, tc.resourceType, resourceType)
	}
}

func TestParsePublicID_Unrecognized(t *testing.T) {
	for _, url := range []string{
		"https://example.com/no-upload-segment/file.png",
		"https://res.cloudinary.com/demo/image/upload/",
		"://bad",
	} {
		_, _, err := parsePublicID(url)
		assert.Error(t, err, url)
	}
}

func TestSign_SortsParameters(t *testing.T) {
	c := &Client{apiSecret: "secret"}
	a := c.sign(map[string]string{"timestamp": "123", "public_id": "x"})
	b := c.sign(map[string]string{"public_id": "x", "timestamp": "123"})
	assert.Equal(t, a, b)
	assert.Len(t, a, 40)
}
