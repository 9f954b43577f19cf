// Seed provisions the service catalog and the admin account. Run it once
// against a fresh database, or again after adding catalog entries; existing
// rows are left untouched.
package main

import (
	"log"
	"os"

	"belalbarber-backend/config"
	"belalbarber-backend/models"

	"github.com/joho/godotenv"
)

var services = []models.Service{
	{
		Title:       "حلاقة احترافية",
		Description: "حلاقة عصرية بأحدث الأساليب والتقنيات مع استخدام أدوات عالية الجودة",
		Price:       "ابتداءً من 50 جنيه",
		Duration:    "30 دقيقة",
		Icon:        "✂️",
		IsActive:    true,
	},
	{
		Title:       "مساج استرخاء",
		Description: "جلسات مساج متخصصة للاسترخاء وتجديد النشاط باستخدام زيوت طبيعية",
		Price:       "ابتداءً من 100 جنيه",
		Duration:    "45 دقيقة",
		Icon:        "💆‍♂️",
		IsActive:    true,
	},
	{
		Title:       "تنظيف بشرة",
		Description: "تنظيف عميق للبشرة وإزالة الشوائب مع استخدام منتجات طبيعية آمنة",
		Price:       "ابتداءً من 80 جنيه",
		Duration:    "60 دقيقة",
		Icon:        "🧴",
		IsActive:    true,
	},
	{
		Title:       "ساونا",
		Description: "جلسات ساونا منعشة للاسترخاء والتخلص من التوتر في بيئة آمنة ونظيفة",
		Price:       "ابتداءً من 70 جنيه",
		Duration:    "20 دقيقة",
		Icon:        "🌡️",
		IsActive:    true,
	},
	{
		Title:       "حمام مغربي",
		Description: "تجربة حمام مغربي أصيل للتنظيف العميق والاسترخاء التام",
		Price:       "ابتداءً من 120 جنيه",
		Duration:    "90 دقيقة",
		Icon:        "🛁",
		IsActive:    true,
	},
	{
		Title:       "حمام تركي",
		Description: "حمام تركي تقليدي للاسترخاء والتنظيف العميق مع مساج منعش",
		Price:       "ابتداءً من 130 جنيه",
		Duration:    "75 دقيقة",
		Icon:        "🏛️",
		IsActive:    true,
	},
}

func main() {
	log.Println("Seeding database...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Reservation{},
		&models.Contact{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Creating services...")
	for _, service := range services {
		var existing models.Service
		if err := config.DB.Where("title = ?", service.Title).First(&existing).Error; err == nil {
			log.Printf("Service %q already exists, skipping", service.Title)
			continue
		}
		if err := config.DB.Create(&service).Error; err != nil {
			log.Fatalf("Failed to create service %q: %v", service.Title, err)
		}
	}

	log.Println("Creating admin user...")
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@belalbarber.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD must be set")
	}

	var existing models.User
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("Admin user %s already exists, skipping", email)
	} else {
		admin := models.User{
			Email:    email,
			Password: password, // hashed in BeforeCreate hook
			Role:     models.RoleAdmin,
		}
		if err := config.DB.Create(&admin).Error; err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
	}

	log.Println("Seeding completed")
}
