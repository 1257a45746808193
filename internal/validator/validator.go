// Package validator checks raw request input against a field schema and
// returns either the accepted values or a *model.ValidationErrors.
package validator

import (
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/ferdian3456/postapi/internal/constant"
	"github.com/ferdian3456/postapi/internal/model"
	"github.com/ferdian3456/postapi/internal/util"
)

// Input is the raw request payload. Values hold form or JSON scalars,
// Files hold multipart uploads.
type Input struct {
	Values map[string]any
	Files  map[string]*multipart.FileHeader
}

type value struct {
	raw     any
	file    *multipart.FileHeader
	present bool
	image   *detectedImage
}

// detectedImage is shared by every rule of one file so the upload is
// inspected once per request.
type detectedImage struct {
	done bool
	info util.ImageInfo
	err  error
}

func (v value) detectImage() (util.ImageInfo, error) {
	if v.file == nil {
		return util.ImageInfo{}, util.ErrNotAnImage
	}

	if !v.image.done {
		v.image.info, v.image.err = util.DetectImage(v.file)
		v.image.done = true
	}

	return v.image.info, v.image.err
}

func (v value) empty() bool {
	if v.file != nil {
		return v.file.Size == 0
	}

	return v.raw == nil
}

func (input Input) lookup(name string) value {
	if file, ok := input.Files[name]; ok && file != nil {
		return value{file: file, present: true, image: &detectedImage{}}
	}

	raw, ok := input.Values[name]
	if !ok {
		return value{}
	}

	// empty strings are treated as null, like an omitted optional field
	if text, isText := raw.(string); isText {
		text = strings.TrimSpace(text)
		if text == "" {
			return value{present: true}
		}
		raw = text
	}

	return value{raw: raw, present: true}
}

// FieldRules is one entry of a Schema.
type FieldRules struct {
	Name  string
	Rules []Rule
}

// Schema is checked in order, so error messages come out in field order.
type Schema []FieldRules

func On(name string, rules ...Rule) FieldRules {
	return FieldRules{Name: name, Rules: rules}
}

// Fields holds the values that passed validation.
type Fields struct {
	values map[string]any
	files  map[string]*multipart.FileHeader
	images map[string]util.ImageInfo
}

func (fields Fields) Has(name string) bool {
	if _, ok := fields.files[name]; ok {
		return true
	}

	_, ok := fields.values[name]
	return ok
}

func (fields Fields) String(name string) string {
	raw, ok := fields.values[name]
	if !ok || raw == nil {
		return ""
	}

	if text, isText := raw.(string); isText {
		return text
	}

	return fmt.Sprint(raw)
}

// StringPtr returns nil when the field was absent or null.
func (fields Fields) StringPtr(name string) *string {
	if _, ok := fields.values[name]; !ok {
		return nil
	}

	text := fields.String(name)
	return &text
}

func (fields Fields) File(name string) *multipart.FileHeader {
	return fields.files[name]
}

// Image returns what the Image rule detected for an accepted upload.
func (fields Fields) Image(name string) (util.ImageInfo, bool) {
	info, ok := fields.images[name]
	return info, ok
}

func Validate(schema Schema, input Input) (Fields, error) {
	fields := Fields{
		values: make(map[string]any),
		files:  make(map[string]*multipart.FileHeader),
		images: make(map[string]util.ImageInfo),
	}
	validationErrs := &model.ValidationErrors{}

	for _, field := range schema {
		v := input.lookup(field.Name)
		required := hasRule(field.Rules, ruleRequired)
		nullable := hasRule(field.Rules, ruleNullable)

		if !v.present || (v.empty() && (required || nullable)) {
			if required {
				validationErrs.Add(newError(field.Name, "The %s field is required.", field.Name))
			}
			continue
		}

		// every failing rule of a field is reported, not just the first
		failed := false
		for _, rule := range field.Rules {
			if rule.check == nil {
				continue
			}

			message := rule.check(field.Name, v)
			if message != "" {
				validationErrs.Add(newError(field.Name, "%s", message))
				failed = true
			}
		}

		if failed {
			continue
		}

		if v.file != nil {
			fields.files[field.Name] = v.file
			if v.image.done && v.image.err == nil {
				fields.images[field.Name] = v.image.info
			}
		} else {
			fields.values[field.Name] = v.raw
		}
	}

	if !validationErrs.Empty() {
		return Fields{}, validationErrs
	}

	return fields, nil
}

func newError(param string, format string, args ...any) *model.ValidationError {
	return &model.ValidationError{
		Code:    constant.ERR_VALIDATION_CODE,
		Message: fmt.Sprintf(format, args...),
		Param:   param,
	}
}
