package main

import (
	"gemmarket/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.MerchantProfileModel{},
		model.AuthenticationModel{},
		model.ProductModel{},
		model.CartModel{},
		model.CartItemModel{},
		model.CheckoutIntentModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
