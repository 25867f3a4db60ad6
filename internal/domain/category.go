package domain

import (
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"dealdesk/pkg/errcodes"
)

// Category — закрытое перечисление разделов каталога. Три секции Битрикса,
// четвёртой не существует: любой switch по Category обязан перечислить все
// три явно.
type Category int

const (
	CategoryDevices Category = iota
	CategoryParts
	CategoryServices
)

var allCategories = []Category{CategoryDevices, CategoryParts, CategoryServices} //nolint:gochecknoglobals

func Categories() []Category {
	return allCategories
}

func (c Category) String() string {
	switch c {
	case CategoryDevices:
		return "devices"
	case CategoryParts:
		return "parts"
	case CategoryServices:
		return "services"
	}

	return fmt.Sprintf("Category(%d)", int(c))
}

func ParseCategory(s string) (Category, error) {
	switch s {
	case "devices":
		return CategoryDevices, nil
	case "parts":
		return CategoryParts, nil
	case "services":
		return CategoryServices, nil
	}

	return 0, failure.NewInvalidArgumentError(
		fmt.Sprintf("unknown catalog category %q", s),
		failure.WithCode(errcodes.InvalidCategory),
	)
}
