package actionLibraryController

import (
	"log"

	"github.com/yilfev-stack/yeniservisrapor26022026/models"

	"gorm.io/gorm"
)

type seedAction struct {
	Scope    string
	Category string
	TextTr   string
	TextEn   string
}

// seedActions is the mandatory starter set of bilingual action texts.
var seedActions = []seedAction{
	{"valve", "overhaul", "Vana komple demonte edilerek tüm iç trim bileşenleri ayrıştırıldı.", "The valve was completely disassembled and all internal trim components were separated."},
	{"valve", "overhaul", "Gövde iç yüzeyleri korozyon/erozyon açısından incelendi.", "The internal body surfaces were inspected for corrosion and erosion."},
	{"valve", "overhaul", "Seat–plug sızdırmazlık yüzeylerinde laplama işlemi uygulandı.", "Lapping was performed on the seat-to-plug sealing surfaces."},
	{"valve", "overhaul", "Salmastra seti yenilendi.", "The packing set was replaced."},
	{"valve", "overhaul", "Gövde contası yenilendi.", "The body gasket was replaced."},
	{"valve", "overhaul", "O-ring ve sızdırmazlık elemanları değiştirildi.", "All O-rings and sealing elements were replaced."},
	{"valve", "overhaul", "Kumlama işlemi uygulandı.", "Abrasive blasting was carried out."},
	{"valve", "overhaul", "Yüzey hazırlığı sonrası astar ve son kat boya uygulandı.", "Following surface preparation, primer and finish coats were applied."},
	{"valve", "overhaul", "Vana yeniden monte edildi.", "The valve was reassembled."},
	{"valve", "overhaul", "Sızdırmazlık testi gerçekleştirildi.", "A leak-tightness test was performed."},
	{"valve", "overhaul", "Fonksiyonel strok testi yapıldı.", "A functional stroke test was completed."},
	{"valve", "overhaul", "Nihai görsel kontrol yapılarak sevke hazırlandı.", "Final visual inspection was completed and the unit was prepared for dispatch."},
	{"actuator_pneumatic", "service", "Aktüatör demonte edildi.", "The actuator was disassembled."},
	{"actuator_pneumatic", "service", "Diyafram kontrol edildi/değiştirildi.", "The diaphragm was inspected and replaced when required."},
	{"actuator_pneumatic", "service", "Keçeler ve O-ringler yenilendi.", "Seals and O-rings were renewed."},
	{"actuator_pneumatic", "service", "Bench set ayarı yapıldı.", "Bench set adjustment was performed."},
	{"actuator_pneumatic", "service", "Hava kaçak testi gerçekleştirildi.", "A pneumatic leak test was performed."},
	{"actuator_pneumatic", "service", "Fonksiyon testi yapıldı.", "A functional test was performed."},
	{"actuator_electric", "service", "İç temizlik yapıldı.", "Internal cleaning was carried out."},
	{"actuator_electric", "service", "Dişli kutusu kontrol edildi.", "The gearbox was inspected."},
	{"actuator_electric", "service", "Gres yenilendi.", "Grease was renewed."},
	{"actuator_electric", "service", "Limit switch ayarları kontrol edildi.", "Limit switch settings were checked."},
	{"actuator_electric", "service", "Elektriksel fonksiyon testi yapıldı.", "Electrical functional testing was performed."},
	{"positioner", "calibration", "Pozisyoner demonte edilerek temizlendi.", "The positioner was disassembled and cleaned."},
	{"positioner", "calibration", "Nozzle–flapper mekanizması kontrol edildi.", "The nozzle-flapper mechanism was checked."},
	{"positioner", "calibration", "Zero/span kalibrasyonu yapıldı.", "Zero/span calibration was performed."},
	{"positioner", "calibration", "Sinyal–pozisyon doğrulaması gerçekleştirildi.", "Signal-to-position verification was completed."},
	{"positioner", "calibration", "Stroking testi yapıldı.", "A stroking test was performed."},
	{"accessory", "checklist", "Solenoid kontrol edildi/değiştirildi.", "The solenoid was inspected and replaced when required."},
	{"accessory", "checklist", "Limit switch ayarlandı.", "The limit switch was adjusted."},
	{"accessory", "checklist", "AFR filtre değiştirildi.", "The AFR filter was replaced."},
	{"accessory", "checklist", "I/P converter kontrol edildi.", "The I/P converter was checked."},
}

// EnsureSeed inserts any missing mandatory library entries. Idempotent: an
// entry is matched on (scope, text_tr) and never duplicated.
func EnsureSeed(db *gorm.DB) int {
	created := 0
	for idx, seed := range seedActions {
		var existing models.ActionLibraryItem
		if err := db.Where("scope = ? AND text_tr = ?", seed.Scope, seed.TextTr).First(&existing).Error; err == nil {
			continue
		}

		item := models.ActionLibraryItem{
			Scope:         seed.Scope,
			Category:      seed.Category,
			OrderIndex:    idx + 1,
			TitleTr:       seed.TextTr,
			TitleEn:       seed.TextEn,
			TextTr:        seed.TextTr,
			TextEn:        seed.TextEn,
			IsActive:      true,
			CreatedByUser: "seed",
		}
		if err := db.Create(&item).Error; err != nil {
			log.Printf("Error seeding action library item %q: %v", seed.TextTr, err)
			continue
		}
		created++
	}
	if created > 0 {
		log.Printf("Seeded %d action library items", created)
	}
	return created
}
