package main

import (
	"html/template"
	"log"

	"github.com/gin-gonic/gin"

	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/handlers"
	"backend/internal/middleware"
	"backend/internal/store"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureProductIndexes(db); err != nil {
		log.Printf("product index warning: %v", err)
	}
	if err := database.EnsureCartIndexes(db); err != nil {
		log.Printf("cart index warning: %v", err)
	}
	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("order index warning: %v", err)
	}
	if err := database.SeedProducts(db); err != nil {
		log.Printf("product seed warning: %v", err)
	}

	st := store.New(db)

	r := gin.Default()
	r.SetFuncMap(template.FuncMap{
		"inc": func(n int) int { return n + 1 },
		"dec": func(n int) int { return n - 1 },
	})
	r.LoadHTMLGlob("templates/**/*")
	r.Static("/public", "./public")

	r.Use(middleware.RequestLogger())
	r.Use(middleware.Session(config.AppEnv.SessionCookie))

	// screens
	r.GET("/", handlers.Home(st))
	r.GET("/cart", handlers.ShowCart(st))
	r.GET("/checkout", handlers.ShowCheckout(st))
	r.GET("/confirmation", handlers.ShowConfirmation(st))

	// cart mutations (redirect back to the issuing screen)
	r.POST("/cart/add", handlers.AddToCart(st))
	r.POST("/cart/update", handlers.UpdateCartItem(st))
	r.POST("/cart/remove", handlers.RemoveCartItem(st))

	// order submission
	r.POST("/orders", handlers.SubmitOrder(st))

	// JSON catalog surface
	r.GET("/products", handlers.GetProducts(st))
	r.GET("/products/featured", handlers.GetFeaturedProducts(st))
	r.GET("/categories", handlers.GetCategories(st))

	r.Run(":" + config.AppEnv.Port)
}
