package config

import (
	"dealdesk/internal/domain"
)

type Bitrix struct {
	WebhookURL        string `env:"BITRIX_WEBHOOK_URL,notEmpty" json:"-"`
	DevicesSectionID  int64  `env:"BITRIX_DEVICES_SECTION_ID,required"`
	PartsSectionID    int64  `env:"BITRIX_PARTS_SECTION_ID,required"`
	ServicesSectionID int64  `env:"BITRIX_SERVICES_SECTION_ID,required"`
}

// SectionID отображает категорию каталога в идентификатор секции Битрикса.
func (b Bitrix) SectionID(category domain.Category) int64 {
	switch category {
	case domain.CategoryDevices:
		return b.DevicesSectionID
	case domain.CategoryParts:
		return b.PartsSectionID
	case domain.CategoryServices:
		return b.ServicesSectionID
	}

	panic("unknown category " + category.String())
}
