package models

// CargoKind identifies what an order is carrying. The set is closed; each
// kind belongs to exactly one price tier.
type CargoKind string

const (
	// cheap bulk
	CargoPaperGoods  CargoKind = "PaperGoods"
	CargoRubberDucks CargoKind = "RubberDucks"
	CargoTimber      CargoKind = "Timber"
	CargoScrapMetal  CargoKind = "ScrapMetal"
	// everyday freight
	CargoFood              CargoKind = "Food"
	CargoGrain             CargoKind = "Grain"
	CargoTextiles          CargoKind = "Textiles"
	CargoBuildingMaterials CargoKind = "BuildingMaterials"
	// manufactured goods
	CargoClothing    CargoKind = "Clothing"
	CargoElectronics CargoKind = "Electronics"
	CargoMachinery   CargoKind = "Machinery"
	CargoAutoParts   CargoKind = "AutoParts"
	CargoFurniture   CargoKind = "Furniture"
	// premium
	CargoPharmaceuticals  CargoKind = "Pharmaceuticals"
	CargoMedicalEquipment CargoKind = "MedicalEquipment"
	CargoJewelryAndGems   CargoKind = "JewelryAndGems"
	// novelty
	CargoHauntedMirrors CargoKind = "HauntedMirrors"
	CargoAlienArtifacts CargoKind = "AlienArtifacts"
)

// CargoKinds lists every kind in a fixed order; order generation indexes
// into this slice, so reordering it changes generated worlds.
var CargoKinds = []CargoKind{
	CargoPaperGoods,
	CargoRubberDucks,
	CargoTimber,
	CargoScrapMetal,
	CargoFood,
	CargoGrain,
	CargoTextiles,
	CargoBuildingMaterials,
	CargoClothing,
	CargoElectronics,
	CargoMachinery,
	CargoAutoParts,
	CargoFurniture,
	CargoPharmaceuticals,
	CargoMedicalEquipment,
	CargoJewelryAndGems,
	CargoHauntedMirrors,
	CargoAlienArtifacts,
}

// PriceRange returns the min and max price per kilogram for the kind.
func (c CargoKind) PriceRange() (float64, float64) {
	switch c {
	case CargoPaperGoods, CargoRubberDucks, CargoTimber, CargoScrapMetal:
		return 0.50, 3.00
	case CargoFood, CargoGrain, CargoTextiles, CargoBuildingMaterials:
		return 2.00, 10.00
	case CargoClothing, CargoElectronics, CargoMachinery, CargoAutoParts, CargoFurniture:
		return 5.00, 20.00
	case CargoPharmaceuticals, CargoMedicalEquipment, CargoJewelryAndGems:
		return 50.00, 500.00
	case CargoHauntedMirrors, CargoAlienArtifacts:
		return 20.00, 100.00
	}
	return 0, 0
}
