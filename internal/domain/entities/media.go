package entities

import (
	"errors"
	"strings"
)

var (
	ErrInvalidMediaSlot  = errors.New("invalid media slot")
	ErrMediaIndexInvalid = errors.New("media index out of range")
)

// MediaSlot names where an uploaded file goes in the draft. Single slots are
// replaced; list slots are appended to.
type MediaSlot string

const (
	MediaSlotMainImage MediaSlot = "mainImage"
	MediaSlotGallery   MediaSlot = "gallery"
	MediaSlotVideo     MediaSlot = "video"
	MediaSlotDocuments MediaSlot = "documents"
)

func ParseMediaSlot(raw string) (MediaSlot, error) {
	switch s := MediaSlot(strings.TrimSpace(raw)); s {
	case MediaSlotMainImage, MediaSlotGallery, MediaSlotVideo, MediaSlotDocuments:
		return s, nil
	}
	return "", ErrInvalidMediaSlot
}

func (s MediaSlot) IsList() bool {
	return s == MediaSlotGallery || s == MediaSlotDocuments
}

// MediaPatch returns the patch that stores url in slot.
func (d Draft) MediaPatch(slot MediaSlot, url string) (DraftPatch, error) {
	switch slot {
	case MediaSlotMainImage:
		return DraftPatch{MainImage: &url}, nil
	case MediaSlotVideo:
		return DraftPatch{Video: &url}, nil
	case MediaSlotGallery:
		gallery := append(cloneStrings(d.Media.Gallery), url)
		return DraftPatch{Gallery: &gallery}, nil
	case MediaSlotDocuments:
		docs := append(cloneStrings(d.Media.Documents), url)
		return DraftPatch{Documents: &docs}, nil
	}
	return DraftPatch{}, ErrInvalidMediaSlot
}

// RemoveMediaPatch returns the patch that clears slot. index is only used by
// list slots.
func (d Draft) RemoveMediaPatch(slot MediaSlot, index int) (DraftPatch, error) {
	empty := ""
	switch slot {
	case MediaSlotMainImage:
		return DraftPatch{MainImage: &empty}, nil
	case MediaSlotVideo:
		return DraftPatch{Video: &empty}, nil
	case MediaSlotGallery:
		gallery, err := removeAt(d.Media.Gallery, index)
		if err != nil {
			return DraftPatch{}, err
		}
		return DraftPatch{Gallery: &gallery}, nil
	case MediaSlotDocuments:
		docs, err := removeAt(d.Media.Documents, index)
		if err != nil {
			return DraftPatch{}, err
		}
		return DraftPatch{Documents: &docs}, nil
	}
	return DraftPatch{}, ErrInvalidMediaSlot
}

func removeAt(in []string, i int) ([]string, error) {
	if i < 0 || i >= len(in) {
		return nil, ErrMediaIndexInvalid
	}
	out := make([]string, 0, len(in)-1)
	out = append(out, in[:i]...)
	return append(out, in[i+1:]...), nil
}

// ListField is a draft field edited as comma-separated text.
type ListField string

const (
	ListFieldTags           ListField = "tags"
	ListFieldIncludes       ListField = "includes"
	ListFieldCertifications ListField = "certifications"
)

var ErrInvalidListField = errors.New("invalid list field")

func ParseListField(raw string) (ListField, error) {
	switch f := ListField(strings.TrimSpace(raw)); f {
	case ListFieldTags, ListFieldIncludes, ListFieldCertifications:
		return f, nil
	}
	return "", ErrInvalidListField
}

// ListTextPatch splits text with SplitCommaList and targets field.
func ListTextPatch(field ListField, text string) (DraftPatch, error) {
	items := SplitCommaList(text)
	switch field {
	case ListFieldTags:
		return DraftPatch{Tags: &items}, nil
	case ListFieldIncludes:
		return DraftPatch{Includes: &items}, nil
	case ListFieldCertifications:
		return DraftPatch{Certifications: &items}, nil
	}
	return DraftPatch{}, ErrInvalidListField
}
