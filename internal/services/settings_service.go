package services

import "fmt"

// ResetAllData removes the profile, organ health and every logged record.
// Settings such as the app-lock passcode survive.
func (service *WellnessService) ResetAllData() error {
	if err := service.profiles.ClearAllData(); err != nil {
		return fmt.Errorf("clear all data: %w", err)
	}
	return nil
}
