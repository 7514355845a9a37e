package domain

// TransportMode представляет способ передвижения
type TransportMode string

const (
	TransportModeWalking         TransportMode = "walking"
	TransportModeBicycle         TransportMode = "bicycle"
	TransportModePublicTransport TransportMode = "publicTransport"
	TransportModeCar             TransportMode = "car"
	TransportModeRideshare       TransportMode = "rideshare"
)

// TransportSpeedKmh - фиксированная таблица скоростей по способам передвижения
var TransportSpeedKmh = map[TransportMode]float64{
	TransportModeWalking:         5,
	TransportModeBicycle:         15,
	TransportModePublicTransport: 25,
	TransportModeCar:             40,
	TransportModeRideshare:       40,
}

// ValidTransportModes returns list of valid transport modes
func ValidTransportModes() []TransportMode {
	return []TransportMode{
		TransportModeWalking,
		TransportModeBicycle,
		TransportModePublicTransport,
		TransportModeCar,
		TransportModeRideshare,
	}
}

// IsValidTransportMode checks if transport mode is valid
func IsValidTransportMode(mode TransportMode) bool {
	_, ok := TransportSpeedKmh[mode]
	return ok
}
