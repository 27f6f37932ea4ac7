package httpclient

import (
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"
)

// parseBody decodes an encoded multipart stream back into its parts.
func parseBody(t *testing.T, body io.Reader, contentType string) *multipart.Reader {
	t.Helper()
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("bad content type: %v", err)
	}
	if mediaType != "multipart/form-data" {
		t.Fatalf("expected multipart/form-data, got %s", mediaType)
	}
	return multipart.NewReader(body, params["boundary"])
}

func TestMultipartBody_FieldsAndFile(t *testing.T) {
	body := &MultipartBody{
		Fields: map[string]string{
			"model":           "whisper-1",
			"response_format": "verbose_json",
		},
		Files: []FileField{{
			FieldName:   "file",
			FileName:    "clip.wav",
			ContentType: "audio/wav",
			Reader:      strings.NewReader("RIFF-audio-bytes"),
		}},
	}

	r, contentType := body.stream()
	defer r.Close()

	parts := map[string]string{}
	var fileName, fileType, fileData string

	mr := parseBody(t, r, contentType)
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("reading part: %v", err)
		}
		data, _ := io.ReadAll(part)
		if part.FileName() != "" {
			fileName = part.FileName()
			fileType = part.Header.Get("Content-Type")
			fileData = string(data)
			continue
		}
		parts[part.FormName()] = string(data)
	}

	if parts["model"] != "whisper-1" {
		t.Errorf("model field missing, got %v", parts)
	}
	if parts["response_format"] != "verbose_json" {
		t.Errorf("response_format field missing, got %v", parts)
	}
	if fileName != "clip.wav" {
		t.Errorf("expected filename clip.wav, got %q", fileName)
	}
	if fileType != "audio/wav" {
		t.Errorf("expected audio/wav, got %q", fileType)
	}
	if fileData != "RIFF-audio-bytes" {
		t.Errorf("unexpected file content: %q", fileData)
	}
}

func TestMultipartBody_RewindsSeekableReader(t *testing.T) {
	reader := strings.NewReader("full-content")
	// Simulate a prior partial read, e.g. content sniffing.
	buf := make([]byte, 4)
	if _, err := reader.Read(buf); err != nil {
		t.Fatalf("setup read failed: %v", err)
	}

	body := &MultipartBody{
		Files: []FileField{{FieldName: "file", FileName: "a.bin", Reader: reader}},
	}
	r, contentType := body.stream()
	defer r.Close()

	mr := parseBody(t, r, contentType)
	part, err := mr.NextPart()
	if err != nil {
		t.Fatalf("reading part: %v", err)
	}
	data, _ := io.ReadAll(part)
	if string(data) != "full-content" {
		t.Errorf("expected the stream to be rewound, got %q", string(data))
	}
}

func TestMultipartBody_EscapesQuotes(t *testing.T) {
	body := &MultipartBody{
		Files: []FileField{{
			FieldName:   "file",
			FileName:    `we"ird.wav`,
			ContentType: "audio/wav",
			Reader:      strings.NewReader("x"),
		}},
	}
	r, contentType := body.stream()
	defer r.Close()

	mr := parseBody(t, r, contentType)
	part, err := mr.NextPart()
	if err != nil {
		t.Fatalf("reading part: %v", err)
	}
	if part.FileName() != `we"ird.wav` {
		t.Errorf("filename not round-tripped, got %q", part.FileName())
	}
}
