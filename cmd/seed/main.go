// Command seed wipes the database and loads a demo catalog plus an admin
// and a reader account. Intended for local development only.
package main

import (
	"context"
	"log"
	"time"

	"github.com/maabu025/book-hubs/internal/config"
	"github.com/maabu025/book-hubs/internal/db"
	"github.com/maabu025/book-hubs/internal/models"
	"github.com/maabu025/book-hubs/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

type seedBook struct {
	title, author, genre, pubDate, description, cover, publisher string
	rating                                                       float64
	totalRatings, readCount                                      int64
	pages                                                        int
}

var books = []seedBook{
	{"To Kill a Mockingbird", "Harper Lee", "Fiction", "1960-07-11", "A story of racial injustice and moral growth in the American South, seen through the eyes of young Scout Finch.", "https://images-na.ssl-images-amazon.com/images/S/compressed.photo.goodreads.com/books/1553383690i/2657.jpg", "J.B. Lippincott", 4.8, 5200, 1205, 324},
	{"1984", "George Orwell", "Science Fiction", "1949-06-08", "A dystopian novel about totalitarianism, surveillance, and the manipulation of truth in a terrifying future society.", "https://images-na.ssl-images-amazon.com/images/S/compressed.photo.goodreads.com/books/1657781256i/61439040.jpg", "Secker & Warburg", 4.7, 6700, 2341, 328},
	{"Pride and Prejudice", "Jane Austen", "Romance", "1813-01-28", "A witty exploration of love, marriage, and society through the Bennet family in Georgian-era England.", "https://images-na.ssl-images-amazon.com/images/S/compressed.photo.goodreads.com/books/1320399351i/1885.jpg", "T. Egerton", 4.6, 4500, 987, 432},
	{"The Great Gatsby", "F. Scott Fitzgerald", "Fiction", "1925-04-10", "A portrait of the Jazz Age that explores wealth, obsession, and the elusive American Dream.", "https://images-na.ssl-images-amazon.com/images/S/compressed.photo.goodreads.com/books/1490528560i/4671.jpg", "Scribner's", 4.5, 5400, 1543, 180},
	{"Harry Potter and the Sorcerer's Stone", "J.K. Rowling", "Fantasy", "1997-06-26", "The beloved first adventure of young wizard Harry Potter at Hogwarts School of Witchcraft and Wizardry.", "https://images-na.ssl-images-amazon.com/images/S/compressed.photo.goodreads.com/books/1598823299i/42844155.jpg", "Bloomsbury", 4.9, 8800, 3456, 309},
	{"The Hobbit", "J.R.R. Tolkien", "Fantasy", "1937-09-21", "Bilbo Baggins's unexpected journey with a company of dwarves to reclaim a dragon's hoard.", "https://images-na.ssl-images-amazon.com/images/S/compressed.photo.goodreads.com/books/1546071216i/5907.jpg", "George Allen & Unwin", 4.7, 7600, 2234, 310},
	{"The Catcher in the Rye", "J.D. Salinger", "Fiction", "1951-07-16", "Holden Caulfield's cynical journey through New York after being expelled from prep school.", "https://images-na.ssl-images-amazon.com/images/S/compressed.photo.goodreads.com/books/1398034300i/5107.jpg", "Little, Brown", 4.3, 3400, 876, 234},
	{"The Lord of the Rings", "J.R.R. Tolkien", "Fantasy", "1954-07-29", "An epic quest to destroy the One Ring and save Middle-earth from the dark lord Sauron.", "https://images-na.ssl-images-amazon.com/images/S/compressed.photo.goodreads.com/books/1566425108i/33.jpg", "George Allen & Unwin", 4.8, 9900, 2987, 1178},
	{"The Book Thief", "Markus Zusak", "Historical Fiction", "2005-09-01", "Narrated by Death, a story of a young girl stealing books in Nazi Germany.", "https://images-na.ssl-images-amazon.com/images/S/compressed.photo.goodreads.com/books/1522157426i/19063.jpg", "Picador", 4.6, 5600, 1432, 552},
	{"Brave New World", "Aldous Huxley", "Science Fiction", "1932-01-01", "A chilling vision of a future where humans are engineered and conditioned for social stability.", "https://images-na.ssl-images-amazon.com/images/S/compressed.photo.goodreads.com/books/1575509280i/5129.jpg", "Chatto & Windus", 4.4, 4300, 1654, 311},
	{"The Alchemist", "Paulo Coelho", "Fiction", "1988-01-01", "A shepherd's magical journey across Egypt in search of treasure and his Personal Legend.", "https://images-na.ssl-images-amazon.com/images/S/compressed.photo.goodreads.com/books/1483412266i/865.jpg", "HarperCollins", 4.5, 6500, 1876, 208},
	{"The Hunger Games", "Suzanne Collins", "Young Adult", "2008-09-14", "In a dystopian future, Katniss Everdeen must fight for her life in a televised death match.", "https://images-na.ssl-images-amazon.com/images/S/compressed.photo.goodreads.com/books/1586722975i/2767052.jpg", "Scholastic Press", 4.8, 7900, 2456, 374},
	{"Gone Girl", "Gillian Flynn", "Mystery", "2012-06-05", "On their fifth wedding anniversary, Amy Dunne disappears and her husband becomes the prime suspect.", "https://images-na.ssl-images-amazon.com/images/S/compressed.photo.goodreads.com/books/1554086139i/19288043.jpg", "Crown Publishing", 4.6, 5700, 1876, 415},
	{"The Kite Runner", "Khaled Hosseini", "Historical Fiction", "2003-05-29", "A story of friendship, betrayal, and redemption set against the backdrop of Afghanistan.", "https://images-na.ssl-images-amazon.com/images/S/compressed.photo.goodreads.com/books/1579036753i/77203.jpg", "Riverhead Books", 4.7, 5400, 1543, 371},
	{"The Handmaid's Tale", "Margaret Atwood", "Science Fiction", "1985-01-01", "In a totalitarian theocracy, a woman struggles to maintain her identity as a child-bearing slave.", "https://images-na.ssl-images-amazon.com/images/S/compressed.photo.goodreads.com/books/1578028274i/38447.jpg", "McClelland and Stewart", 4.6, 5400, 1654, 311},
	{"Jane Eyre", "Charlotte Brontë", "Romance", "1847-10-16", "Orphaned Jane Eyre grows into a strong-willed woman who falls for the brooding Mr. Rochester.", "https://images-na.ssl-images-amazon.com/images/S/compressed.photo.goodreads.com/books/1557343311i/10210.jpg", "Smith, Elder & Co.", 4.7, 5700, 1098, 507},
	{"Fahrenheit 451", "Ray Bradbury", "Science Fiction", "1953-10-19", "In a future where books are banned, a fireman whose job is to burn them begins to question everything.", "https://images-na.ssl-images-amazon.com/images/S/compressed.photo.goodreads.com/books/1383718290i/13079982.jpg", "Ballantine Books", 4.6, 4600, 1234, 249},
	{"Little Women", "Louisa May Alcott", "Fiction", "1868-01-01", "Four sisters navigate love, loss, and ambition in Civil War-era New England.", "https://images-na.ssl-images-amazon.com/images/S/compressed.photo.goodreads.com/books/1562690475i/1934.jpg", "Roberts Brothers", 4.5, 3400, 765, 449},
	{"Life of Pi", "Yann Martel", "Adventure", "2001-09-11", "A boy and a Bengal tiger adrift on the Pacific Ocean after a shipwreck.", "https://images-na.ssl-images-amazon.com/images/S/compressed.photo.goodreads.com/books/1631251689i/4214.jpg", "Knopf Canada", 4.5, 4300, 1234, 319},
	{"The Da Vinci Code", "Dan Brown", "Mystery", "2003-03-18", "Robert Langdon races across Europe to unravel a conspiracy hidden in famous works of art.", "https://images-na.ssl-images-amazon.com/images/S/compressed.photo.goodreads.com/books/1579126898i/968.jpg", "Doubleday", 4.3, 6500, 1765, 454},
	{"The Chronicles of Narnia", "C.S. Lewis", "Fantasy", "1950-10-16", "Seven children discover a magical wardrobe that leads to the wondrous land of Narnia.", "https://images-na.ssl-images-amazon.com/images/S/compressed.photo.goodreads.com/books/1449868701i/11127.jpg", "Geoffrey Bles", 4.7, 5400, 1987, 767},
	{"Wuthering Heights", "Emily Brontë", "Romance", "1847-12-01", "The passionate and destructive love between Heathcliff and Catherine on the Yorkshire moors.", "https://images-na.ssl-images-amazon.com/images/S/compressed.photo.goodreads.com/books/1587772643i/6185.jpg", "Thomas Cautley Newby", 4.4, 3200, 654, 416},
	{"The Girl with the Dragon Tattoo", "Stieg Larsson", "Mystery", "2005-08-01", "A disgraced journalist and a hacker investigate a decades-old disappearance in a wealthy Swedish family.", "https://images-na.ssl-images-amazon.com/images/S/compressed.photo.goodreads.com/books/1327868566i/2429135.jpg", "Norstedts", 4.5, 6800, 1987, 465},
	{"The Road", "Cormac McCarthy", "Science Fiction", "2006-09-26", "A father and son journey through a post-apocalyptic America, clinging to survival and love.", "https://images-na.ssl-images-amazon.com/images/S/compressed.photo.goodreads.com/books/1600241424i/6288.jpg", "Alfred A. Knopf", 4.4, 3400, 876, 287},
}

func main() {
	cfg := config.Load()
	db.InitMongo(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := db.DB().Collection("books").DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("wiping books failed: %v", err)
	}
	if _, err := db.DB().Collection("users").DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("wiping users failed: %v", err)
	}

	if err := db.EnsureIndexes(ctx); err != nil {
		log.Fatalf("index creation failed: %v", err)
	}

	bookRepo := repository.NewBookRepository()
	userRepo := repository.NewUserRepository()

	now := time.Now().UTC()
	for _, sb := range books {
		pubDate, err := time.Parse("2006-01-02", sb.pubDate)
		if err != nil {
			log.Fatalf("bad publication date for %q: %v", sb.title, err)
		}
		b := &models.Book{
			Title:           sb.title,
			Author:          sb.author,
			Genre:           sb.genre,
			Description:     sb.description,
			CoverImage:      sb.cover,
			PublicationDate: pubDate,
			Publisher:       sb.publisher,
			Pages:           sb.pages,
			Language:        "English",
			Rating:          sb.rating,
			TotalRatings:    sb.totalRatings,
			ReadCount:       sb.readCount,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := bookRepo.Insert(ctx, b); err != nil {
			log.Fatalf("inserting %q failed: %v", sb.title, err)
		}
	}
	log.Printf("inserted %d books", len(books))

	accounts := []struct {
		username, email, password, role string
	}{
		{"mariam", "mariam@bookhub.com", "admin123", models.RoleAdmin},
		{"reader", "reader@bookhub.com", "reader123", models.RoleUser},
	}
	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("hashing password failed: %v", err)
		}
		u := &models.User{
			Username:     a.username,
			Email:        a.email,
			PasswordHash: string(hash),
			Role:         a.role,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Insert(ctx, u); err != nil {
			log.Fatalf("inserting user %q failed: %v", a.username, err)
		}
		log.Printf("created %s account %s", a.role, a.email)
	}
}
