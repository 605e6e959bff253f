package domain

import "errors"

var ErrUnsupportedMedia = errors.New("uploaded file is not an image")
var ErrFileTooLarge = errors.New("uploaded file exceeds the size limit")
