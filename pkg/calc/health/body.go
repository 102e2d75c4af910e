package health

import (
	"math"
	"strings"

	"github.com/msto63/mRW/foundation/core/errors"
)

// Sex selects the additive constant of the Mifflin-St Jeor equation
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// ParseSex accepts male/female and the German and single-letter forms
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m", "mann", "männlich":
		return Male, nil
	case "female", "f", "w", "frau", "weiblich":
		return Female, nil
	}
	return "", errors.InvalidArgument(errors.ModuleHealth, "parse_sex", s, "male or female")
}

// ActivityLevel selects a TDEE multiplier
type ActivityLevel string

const (
	Sedentary  ActivityLevel = "sedentary"
	Light      ActivityLevel = "light"
	Moderate   ActivityLevel = "moderate"
	Active     ActivityLevel = "active"
	VeryActive ActivityLevel = "very_active"
)

var activityMultipliers = map[ActivityLevel]float64{
	Sedentary:  1.2,
	Light:      1.375,
	Moderate:   1.55,
	Active:     1.725,
	VeryActive: 1.9,
}

// ActivityLevels lists the levels from least to most active
func ActivityLevels() []ActivityLevel {
	return []ActivityLevel{Sedentary, Light, Moderate, Active, VeryActive}
}

// Multiplier returns the TDEE factor of the level
func (a ActivityLevel) Multiplier() (float64, bool) {
	m, ok := activityMultipliers[a]
	return m, ok
}

// ParseActivityLevel accepts the level names with '-' or ' ' for '_'
func ParseActivityLevel(s string) (ActivityLevel, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	if key == "lightly_active" {
		key = string(Light)
	}
	if key == "moderately_active" {
		key = string(Moderate)
	}
	if _, ok := activityMultipliers[ActivityLevel(key)]; !ok {
		return "", errors.InvalidArgument(errors.ModuleHealth, "parse_activity", s, "sedentary, light, moderate, active or very_active")
	}
	return ActivityLevel(key), nil
}

// BodyMetricsInput is the shared input of the energy calculators
type BodyMetricsInput struct {
	WeightKg      float64       `json:"weight_kg"`
	HeightCm      float64       `json:"height_cm"`
	Age           int           `json:"age"`
	Sex           Sex           `json:"sex"`
	ActivityLevel ActivityLevel `json:"activity_level,omitempty"`
}

func (in BodyMetricsInput) validate(op string) error {
	if !(in.WeightKg > 0 && in.WeightKg < 1000) {
		return errors.InvalidArgument(errors.ModuleHealth, op, in.WeightKg, "weight between 0 and 1000 kg")
	}
	if !(in.HeightCm > 0 && in.HeightCm < 300) {
		return errors.InvalidArgument(errors.ModuleHealth, op, in.HeightCm, "height between 0 and 300 cm")
	}
	if in.Age < 1 || in.Age > 130 {
		return errors.InvalidArgument(errors.ModuleHealth, op, in.Age, "age between 1 and 130")
	}
	if in.Sex != Male && in.Sex != Female {
		return errors.InvalidArgument(errors.ModuleHealth, op, in.Sex, "male or female")
	}
	return nil
}

// BMR returns the basal metabolic rate in kcal/day (Mifflin-St Jeor):
// 10*weight + 6.25*height - 5*age, plus 5 for men or minus 161 for women.
func BMR(in BodyMetricsInput) (float64, error) {
	if err := in.validate("bmr"); err != nil {
		return 0, err
	}
	bmr := 10*in.WeightKg + 6.25*in.HeightCm - 5*float64(in.Age)
	if in.Sex == Male {
		bmr += 5
	} else {
		bmr -= 161
	}
	return bmr, nil
}

// TDEE returns BMR times the activity multiplier
func TDEE(in BodyMetricsInput) (float64, error) {
	bmr, err := BMR(in)
	if err != nil {
		return 0, err
	}
	m, ok := in.ActivityLevel.Multiplier()
	if !ok {
		return 0, errors.InvalidArgument(errors.ModuleHealth, "tdee", in.ActivityLevel, "known activity level")
	}
	return bmr * m, nil
}

// CalorieAdjustment is the fixed daily deficit or surplus in kcal
const CalorieAdjustment = 500

// CalorieGoals holds daily targets
type CalorieGoals struct {
	BMR      float64 `json:"bmr"`
	Maintain float64 `json:"maintain"`
	Lose     float64 `json:"lose"`
	Gain     float64 `json:"gain"`
}

// Goals returns maintain = TDEE, lose = TDEE - 500, gain = TDEE + 500
func Goals(in BodyMetricsInput) (CalorieGoals, error) {
	bmr, err := BMR(in)
	if err != nil {
		return CalorieGoals{}, err
	}
	tdee, err := TDEE(in)
	if err != nil {
		return CalorieGoals{}, err
	}
	return CalorieGoals{
		BMR:      math.Round(bmr),
		Maintain: math.Round(tdee),
		Lose:     math.Round(tdee - CalorieAdjustment),
		Gain:     math.Round(tdee + CalorieAdjustment),
	}, nil
}

// BMIResult holds a BMI value and its WHO band
type BMIResult struct {
	Value    float64 `json:"value"`
	Category string  `json:"category"`
}

// BMI returns weight / height² with the WHO classification
func BMI(weightKg, heightCm float64) (BMIResult, error) {
	if !(weightKg > 0) {
		return BMIResult{}, errors.InvalidArgument(errors.ModuleHealth, "bmi", weightKg, "weight > 0")
	}
	if !(heightCm > 0) {
		return BMIResult{}, errors.InvalidArgument(errors.ModuleHealth, "bmi", heightCm, "height > 0")
	}
	m := heightCm / 100
	v := weightKg / (m * m)
	return BMIResult{Value: math.Round(v*10) / 10, Category: BMICategory(v)}, nil
}

// BMICategory classifies a BMI value
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "underweight"
	case bmi < 25:
		return "normal"
	case bmi < 30:
		return "overweight"
	case bmi < 35:
		return "obese class I"
	case bmi < 40:
		return "obese class II"
	default:
		return "obese class III"
	}
}
