package lifecycle

import (
	"strings"

	"dispatch/internal/entities"
)

func isValidDeliveryID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidLocation(loc entities.Location) bool {
	return loc.Lat >= -90 && loc.Lat <= 90 && loc.Lon >= -180 && loc.Lon <= 180
}

func isValidVehicleClass(class entities.VehicleClass) bool {
	switch class {
	case entities.VehicleBike, entities.VehicleCar, entities.VehicleVan:
		return true
	default:
		return false
	}
}
