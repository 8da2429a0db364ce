package config

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// CatalogSeed is a vendor catalogue file loaded into the hub store.
type CatalogSeed struct {
	Vendors []VendorSeed `yaml:"vendors"`
}

// VendorSeed is one vendor profile and its products.
type VendorSeed struct {
	ID             string        `yaml:"id"`
	Name           string        `yaml:"name"`
	Rating         *float64      `yaml:"rating"`
	DeliveryRadius float64       `yaml:"deliveryRadius"`
	Products       []ProductSeed `yaml:"products"`
}

// ProductSeed is one catalogue item. Active defaults to true.
type ProductSeed struct {
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name"`
	Category string  `yaml:"category"`
	Price    float64 `yaml:"price"`
	Unit     string  `yaml:"unit"`
	Quantity int     `yaml:"quantity"`
	Active   *bool   `yaml:"active"`
}

// LoadCatalog reads a catalogue seed file.
func LoadCatalog(path string) (*CatalogSeed, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read catalog %s", path)
	}

	seed := new(CatalogSeed)
	if err := k.UnmarshalWithConf("", seed, koanf.UnmarshalConf{
		Tag: "yaml",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           seed,
			TagName:          "yaml",
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "decode catalog %s", path)
	}

	for i, v := range seed.Vendors {
		if v.ID == "" {
			return nil, errors.Errorf("catalog vendor #%d has no id", i)
		}
	}

	return seed, nil
}
