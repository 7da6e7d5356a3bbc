package db

import (
	"context"

	"github.com/RoyceAzure/lab/sweetshop/internal/infra/repository/db/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// 開發環境的初始目錄資料
// 只在sweets資料表為空時寫入
func seedSweets() []model.Sweet {
	newSweet := func(name, category string, price int64, quantity int, description, imageURL string, rating float64) model.Sweet {
		return model.Sweet{
			ID:          uuid.New(),
			Name:        name,
			Category:    category,
			Price:       decimal.NewFromInt(price),
			Quantity:    quantity,
			Description: description,
			ImageURL:    imageURL,
			Rating:      rating,
		}
	}

	return []model.Sweet{
		newSweet("Chocolate Truffle", "Chocolate", 299, 50, "Rich dark chocolate truffle with cocoa powder coating", "https://www.fnp.com/images/pr/l/v20250519212917/chocolate-truffle-cream-cake_1.jpg", 4.8),
		newSweet("Strawberry Delight", "Cake", 449, 25, "Fresh strawberry cake with cream frosting", "https://images.unsplash.com/photo-1565958011703-44f9829ba187?w=400&h=400&fit=crop", 4.7),
		newSweet("Gulab Jamun", "Traditional", 150, 100, "Traditional Indian sweet soaked in sugar syrup", "https://png.pngtree.com/png-clipart/20230508/original/pngtree-indian-sweet-gulab-jamun-closeup-view-png-image_9151773.png", 4.9),
		newSweet("Chocolate Chip Cookie", "Cookie", 199, 75, "Crispy cookies loaded with chocolate chips", "https://images.unsplash.com/photo-1499636136210-6f4ee915583e?w=400&h=400&fit=crop", 4.6),
		newSweet("Vanilla Cupcake", "Cake", 180, 40, "Fluffy vanilla cupcake with buttercream frosting", "https://images.unsplash.com/photo-1587668178277-295251f900ce?w=400&h=400&fit=crop", 4.5),
		newSweet("Rasgulla", "Traditional", 120, 80, "Spongy cottage cheese balls in light sugar syrup", "https://png.pngtree.com/png-vector/20250207/ourmid/pngtree-delightful-bowl-of-soft-rasgullas-garnished-with-fresh-herbs-png-image_15419513.png", 4.8),
		newSweet("Ladoo", "Traditional", 80, 120, "Sweet round balls made from gram flour", "https://png.pngtree.com/png-vector/20231019/ourmid/pngtree-diwali-besan-ladoo-png-image_10234536.png", 4.7),
		newSweet("Jalebi", "Traditional", 100, 60, "Crispy sweet spirals soaked in sugar syrup", "https://media.istockphoto.com/id/1159362325/photo/bread-pakora.jpg?s=612x612&w=0&k=20&c=93uILcInCMXroXgjEJYXNeUzWh5NASSrEnylAgW7hcs=", 4.6),
		newSweet("Kaju Katli", "Traditional", 350, 45, "Diamond-shaped cashew fudge with silver leaf", "https://www.shutterstock.com/image-vector/kaju-katli-flower-pattern-traditional-260nw-2650237369.jpg", 4.9),
		newSweet("Barfi", "Traditional", 180, 90, "Milk-based sweet confection with various flavors", "https://static.vecteezy.com/system/resources/previews/060/240/517/non_2x/indian-sweet-burfi-in-bowl-on-transparent-background-png.png", 4.7),
	}
}

// SeedSweets 寫入初始目錄資料
// 冪等性: 已有資料就跳過
func (s *SweetRepo) SeedSweets(ctx context.Context) error {
	count, err := s.CountSweets(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return s.CreateSweetsBatch(ctx, seedSweets())
}
