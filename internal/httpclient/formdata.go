package httpclient

import (
	"bytes"
	"io"
	"mime/multipart"
)

type formField struct {
	name  string
	value string
}

type formFile struct {
	field    string
	filename string
	content  []byte
}

// FormData is a multipart request body, typically an uploaded photo or
// document attached to an incident or a guard profile.
type FormData struct {
	fields []formField
	files  []formFile
}

func NewFormData() *FormData {
	return &FormData{}
}

func (f *FormData) AddField(name, value string) *FormData {
	f.fields = append(f.fields, formField{name: name, value: value})
	return f
}

func (f *FormData) AddFile(field, filename string, content []byte) *FormData {
	f.files = append(f.files, formFile{field: field, filename: filename, content: content})
	return f
}

// encode renders the body and the content type carrying its boundary.
func (f *FormData) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, field := range f.fields {
		if err := w.WriteField(field.name, field.value); err != nil {
			return nil, "", err
		}
	}
	for _, file := range f.files {
		part, err := w.CreateFormFile(file.field, file.filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(file.content); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
