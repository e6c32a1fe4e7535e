package main

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/stageline/bands-backend/internal/address"
	"github.com/stageline/bands-backend/internal/booking"
	"github.com/stageline/bands-backend/internal/cart"
	"github.com/stageline/bands-backend/internal/concert"
	"github.com/stageline/bands-backend/internal/config"
	"github.com/stageline/bands-backend/internal/mailer"
	"github.com/stageline/bands-backend/internal/merch"
	"github.com/stageline/bands-backend/internal/order"
	"github.com/stageline/bands-backend/internal/payment"
	"github.com/stageline/bands-backend/internal/song"
	"github.com/stageline/bands-backend/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	mustBootstrapSchema(db)

	// shared services first so downstream handlers can borrow them
	merchService := merch.NewService(merch.NewPostgresRepository(db))
	addressService := address.NewService(address.NewPostgresRepository(db))

	var welcomeMailer user.WelcomeMailer
	if cfg.SMTPHost != "" {
		welcomeMailer = mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)
	}

	userService := user.NewService(user.NewPostgresRepository(db))
	userHandler := user.NewHandler(userService, cfg.JWTSecret, welcomeMailer)
	userHandler.RegisterPublicRoutes(app)

	merchHandler := merch.NewHandler(merchService)
	merchHandler.RegisterPublicRoutes(app)

	concertHandler := concert.NewHandler(concert.NewService(concert.NewPostgresRepository(db)))
	concertHandler.RegisterPublicRoutes(app)

	songHandler := song.NewHandler(song.NewService(song.NewPostgresRepository(db)))
	songHandler.RegisterPublicRoutes(app)

	bookingHandler := booking.NewHandler(booking.NewService(booking.NewPostgresRepository(db)))
	bookingHandler.RegisterPublicRoutes(app)

	// everything registered after this middleware requires a valid token
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	cartHandler := cart.NewHandler(cart.NewService(cart.NewPostgresRepository(db), merchService))
	cartHandler.RegisterProtectedRoutes(app)

	gateway := payment.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	orderHandler := order.NewHandler(order.NewService(order.NewPostgresRepository(db), gateway, merchService, addressService))
	orderHandler.RegisterProtectedRoutes(app)

	addressHandler := address.NewHandler(addressService)
	addressHandler.RegisterProtectedRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

func mustBootstrapSchema(db *sql.DB) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
            user_id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT NOT NULL UNIQUE,
            password TEXT NOT NULL,
            created_at TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS merch (
            merch_id SERIAL PRIMARY KEY,
            title TEXT NOT NULL,
            price NUMERIC NOT NULL DEFAULT 0,
            image TEXT NOT NULL DEFAULT '',
            description TEXT NOT NULL DEFAULT ''
        )`,
		// one cart document per user; user_id is intentionally not unique
		// (lookup takes the lowest cart_id)
		`CREATE TABLE IF NOT EXISTS carts (
            cart_id SERIAL PRIMARY KEY,
            user_id INT NOT NULL,
            items JSONB NOT NULL DEFAULT '[]',
            updated_at TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            order_id SERIAL PRIMARY KEY,
            user_id INT NOT NULL,
            items JSONB NOT NULL DEFAULT '[]',
            total_amount NUMERIC NOT NULL DEFAULT 0,
            payment_id TEXT NOT NULL DEFAULT '',
            receipt TEXT NOT NULL UNIQUE,
            status TEXT NOT NULL DEFAULT 'pending',
            created_at TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS addresses (
            address_id SERIAL PRIMARY KEY,
            user_id INT NOT NULL UNIQUE,
            house_no TEXT NOT NULL DEFAULT '',
            street TEXT NOT NULL DEFAULT '',
            city TEXT NOT NULL DEFAULT '',
            state TEXT NOT NULL DEFAULT '',
            postal_code TEXT NOT NULL DEFAULT '',
            country TEXT NOT NULL DEFAULT '',
            created_at TEXT NOT NULL DEFAULT '',
            updated_at TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS concerts (
            concert_id SERIAL PRIMARY KEY,
            image TEXT NOT NULL DEFAULT '',
            name TEXT NOT NULL,
            date TEXT NOT NULL DEFAULT '',
            price TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS songs (
            song_id SERIAL PRIMARY KEY,
            image TEXT NOT NULL DEFAULT '',
            name TEXT NOT NULL,
            link TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS bookings (
            booking_id SERIAL PRIMARY KEY,
            event TEXT NOT NULL DEFAULT '',
            name TEXT NOT NULL,
            age INT NOT NULL DEFAULT 0,
            email TEXT NOT NULL
        )`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			panic(err)
		}
	}
}
