package movie_constants

import (
	game_constants "Filmy/constants/game"
)

// SeedMovie is one catalogue entry before it is persisted. Word counts
// are derived from the title at seed time, not stored here.
type SeedMovie struct {
	Title      string
	Year       int
	Hero       string
	Heroine    string
	Difficulty game_constants.Difficulty
	Genre      string
}

// Catalogue is the full set of Hindi movies the game draws from.
// Easy entries are popular blockbusters, medium ones are older or less
// mainstream classics, hard ones are obscure or complex titles.
var Catalogue = []SeedMovie{
	// Easy
	{Title: "Dilwale Dulhania Le Jayenge", Year: 1995, Hero: "Shah Rukh Khan", Heroine: "Kajol", Difficulty: game_constants.DifficultyEasy, Genre: "Romance"},
	{Title: "Sholay", Year: 1975, Hero: "Amitabh Bachchan", Heroine: "Hema Malini", Difficulty: game_constants.DifficultyEasy, Genre: "Action"},
	{Title: "3 Idiots", Year: 2009, Hero: "Aamir Khan", Heroine: "Kareena Kapoor", Difficulty: game_constants.DifficultyEasy, Genre: "Comedy"},
	{Title: "Kuch Kuch Hota Hai", Year: 1998, Hero: "Shah Rukh Khan", Heroine: "Kajol", Difficulty: game_constants.DifficultyEasy, Genre: "Romance"},
	{Title: "Dangal", Year: 2016, Hero: "Aamir Khan", Heroine: "Fatima Sana Shaikh", Difficulty: game_constants.DifficultyEasy, Genre: "Sports"},
	{Title: "Baahubali", Year: 2015, Hero: "Prabhas", Heroine: "Anushka Shetty", Difficulty: game_constants.DifficultyEasy, Genre: "Action"},
	{Title: "PK", Year: 2014, Hero: "Aamir Khan", Heroine: "Anushka Sharma", Difficulty: game_constants.DifficultyEasy, Genre: "Comedy"},
	{Title: "Bajrangi Bhaijaan", Year: 2015, Hero: "Salman Khan", Heroine: "Kareena Kapoor", Difficulty: game_constants.DifficultyEasy, Genre: "Drama"},
	{Title: "Kabhi Khushi Kabhie Gham", Year: 2001, Hero: "Shah Rukh Khan", Heroine: "Kajol", Difficulty: game_constants.DifficultyEasy, Genre: "Drama"},
	{Title: "Lagaan", Year: 2001, Hero: "Aamir Khan", Heroine: "Gracy Singh", Difficulty: game_constants.DifficultyEasy, Genre: "Sports"},
	{Title: "Hum Aapke Hain Koun", Year: 1994, Hero: "Salman Khan", Heroine: "Madhuri Dixit", Difficulty: game_constants.DifficultyEasy, Genre: "Romance"},
	{Title: "Dil To Pagal Hai", Year: 1997, Hero: "Shah Rukh Khan", Heroine: "Madhuri Dixit", Difficulty: game_constants.DifficultyEasy, Genre: "Romance"},
	{Title: "Zindagi Na Milegi Dobara", Year: 2011, Hero: "Hrithik Roshan", Heroine: "Katrina Kaif", Difficulty: game_constants.DifficultyEasy, Genre: "Drama"},
	{Title: "Dhoom 2", Year: 2006, Hero: "Hrithik Roshan", Heroine: "Aishwarya Rai", Difficulty: game_constants.DifficultyEasy, Genre: "Action"},
	{Title: "Ghajini", Year: 2008, Hero: "Aamir Khan", Heroine: "Asin", Difficulty: game_constants.DifficultyEasy, Genre: "Action"},
	{Title: "Chennai Express", Year: 2013, Hero: "Shah Rukh Khan", Heroine: "Deepika Padukone", Difficulty: game_constants.DifficultyEasy, Genre: "Comedy"},
	{Title: "Jab We Met", Year: 2007, Hero: "Shahid Kapoor", Heroine: "Kareena Kapoor", Difficulty: game_constants.DifficultyEasy, Genre: "Romance"},
	{Title: "Rang De Basanti", Year: 2006, Hero: "Aamir Khan", Heroine: "Soha Ali Khan", Difficulty: game_constants.DifficultyEasy, Genre: "Drama"},
	{Title: "Dil Chahta Hai", Year: 2001, Hero: "Aamir Khan", Heroine: "Preity Zinta", Difficulty: game_constants.DifficultyEasy, Genre: "Drama"},
	{Title: "Taare Zameen Par", Year: 2007, Hero: "Aamir Khan", Heroine: "Tisca Chopra", Difficulty: game_constants.DifficultyEasy, Genre: "Drama"},
	{Title: "Kal Ho Naa Ho", Year: 2003, Hero: "Shah Rukh Khan", Heroine: "Preity Zinta", Difficulty: game_constants.DifficultyEasy, Genre: "Romance"},
	{Title: "Hum Dil De Chuke Sanam", Year: 1999, Hero: "Salman Khan", Heroine: "Aishwarya Rai", Difficulty: game_constants.DifficultyEasy, Genre: "Romance"},
	{Title: "Padmaavat", Year: 2018, Hero: "Shahid Kapoor", Heroine: "Deepika Padukone", Difficulty: game_constants.DifficultyEasy, Genre: "Drama"},
	{Title: "War", Year: 2019, Hero: "Hrithik Roshan", Heroine: "Vaani Kapoor", Difficulty: game_constants.DifficultyEasy, Genre: "Action"},
	{Title: "Pathaan", Year: 2023, Hero: "Shah Rukh Khan", Heroine: "Deepika Padukone", Difficulty: game_constants.DifficultyEasy, Genre: "Action"},
	{Title: "Jawan", Year: 2023, Hero: "Shah Rukh Khan", Heroine: "Nayanthara", Difficulty: game_constants.DifficultyEasy, Genre: "Action"},
	{Title: "Animal", Year: 2023, Hero: "Ranbir Kapoor", Heroine: "Rashmika Mandanna", Difficulty: game_constants.DifficultyEasy, Genre: "Action"},
	{Title: "Stree", Year: 2018, Hero: "Rajkummar Rao", Heroine: "Shraddha Kapoor", Difficulty: game_constants.DifficultyEasy, Genre: "Horror Comedy"},
	{Title: "Singham", Year: 2011, Hero: "Ajay Devgn", Heroine: "Kajal Aggarwal", Difficulty: game_constants.DifficultyEasy, Genre: "Action"},
	{Title: "Golmaal", Year: 2006, Hero: "Ajay Devgn", Heroine: "Sharman Joshi", Difficulty: game_constants.DifficultyEasy, Genre: "Comedy"},
	{Title: "Drishyam", Year: 2015, Hero: "Ajay Devgn", Heroine: "Shriya Saran", Difficulty: game_constants.DifficultyEasy, Genre: "Thriller"},
	{Title: "Om Shanti Om", Year: 2007, Hero: "Shah Rukh Khan", Heroine: "Deepika Padukone", Difficulty: game_constants.DifficultyEasy, Genre: "Drama"},
	{Title: "Yeh Jawaani Hai Deewani", Year: 2013, Hero: "Ranbir Kapoor", Heroine: "Deepika Padukone", Difficulty: game_constants.DifficultyEasy, Genre: "Romance"},
	{Title: "Barfi", Year: 2012, Hero: "Ranbir Kapoor", Heroine: "Priyanka Chopra", Difficulty: game_constants.DifficultyEasy, Genre: "Romance"},
	{Title: "Queen", Year: 2014, Hero: "Rajkummar Rao", Heroine: "Kangana Ranaut", Difficulty: game_constants.DifficultyEasy, Genre: "Drama"},

	// Medium
	{Title: "Deewar", Year: 1975, Hero: "Amitabh Bachchan", Heroine: "Parveen Babi", Difficulty: game_constants.DifficultyMedium, Genre: "Action"},
	{Title: "Amar Akbar Anthony", Year: 1977, Hero: "Amitabh Bachchan", Heroine: "Parveen Babi", Difficulty: game_constants.DifficultyMedium, Genre: "Comedy"},
	{Title: "Don", Year: 1978, Hero: "Amitabh Bachchan", Heroine: "Zeenat Aman", Difficulty: game_constants.DifficultyMedium, Genre: "Action"},
	{Title: "Silsila", Year: 1981, Hero: "Amitabh Bachchan", Heroine: "Rekha", Difficulty: game_constants.DifficultyMedium, Genre: "Drama"},
	{Title: "Lamhe", Year: 1991, Hero: "Anil Kapoor", Heroine: "Sridevi", Difficulty: game_constants.DifficultyMedium, Genre: "Romance"},
	{Title: "Chandni", Year: 1989, Hero: "Rishi Kapoor", Heroine: "Sridevi", Difficulty: game_constants.DifficultyMedium, Genre: "Romance"},
	{Title: "Mr. India", Year: 1987, Hero: "Anil Kapoor", Heroine: "Sridevi", Difficulty: game_constants.DifficultyMedium, Genre: "Action"},
	{Title: "Qayamat Se Qayamat Tak", Year: 1988, Hero: "Aamir Khan", Heroine: "Juhi Chawla", Difficulty: game_constants.DifficultyMedium, Genre: "Romance"},
	{Title: "Maine Pyar Kiya", Year: 1989, Hero: "Salman Khan", Heroine: "Bhagyashree", Difficulty: game_constants.DifficultyMedium, Genre: "Romance"},
	{Title: "Darr", Year: 1993, Hero: "Shah Rukh Khan", Heroine: "Juhi Chawla", Difficulty: game_constants.DifficultyMedium, Genre: "Thriller"},
	{Title: "Baazigar", Year: 1993, Hero: "Shah Rukh Khan", Heroine: "Kajol", Difficulty: game_constants.DifficultyMedium, Genre: "Thriller"},
	{Title: "Kabhi Haan Kabhi Naa", Year: 1994, Hero: "Shah Rukh Khan", Heroine: "Suchitra Krishnamoorthi", Difficulty: game_constants.DifficultyMedium, Genre: "Comedy"},
	{Title: "Dil Se", Year: 1998, Hero: "Shah Rukh Khan", Heroine: "Manisha Koirala", Difficulty: game_constants.DifficultyMedium, Genre: "Drama"},
	{Title: "Satya", Year: 1998, Hero: "J.D. Chakravarthy", Heroine: "Urmila Matondkar", Difficulty: game_constants.DifficultyMedium, Genre: "Crime"},
	{Title: "Company", Year: 2002, Hero: "Ajay Devgn", Heroine: "Manisha Koirala", Difficulty: game_constants.DifficultyMedium, Genre: "Crime"},
	{Title: "Gangster", Year: 2006, Hero: "Emraan Hashmi", Heroine: "Kangana Ranaut", Difficulty: game_constants.DifficultyMedium, Genre: "Crime"},
	{Title: "Life In A Metro", Year: 2007, Hero: "Shilpa Shetty", Heroine: "Konkona Sen Sharma", Difficulty: game_constants.DifficultyMedium, Genre: "Drama"},
	{Title: "Wake Up Sid", Year: 2009, Hero: "Ranbir Kapoor", Heroine: "Konkona Sen Sharma", Difficulty: game_constants.DifficultyMedium, Genre: "Drama"},
	{Title: "Paan Singh Tomar", Year: 2012, Hero: "Irrfan Khan", Heroine: "Mahie Gill", Difficulty: game_constants.DifficultyMedium, Genre: "Drama"},
	{Title: "The Lunchbox", Year: 2013, Hero: "Irrfan Khan", Heroine: "Nimrat Kaur", Difficulty: game_constants.DifficultyMedium, Genre: "Romance"},
	{Title: "Haider", Year: 2014, Hero: "Shahid Kapoor", Heroine: "Shraddha Kapoor", Difficulty: game_constants.DifficultyMedium, Genre: "Drama"},
	{Title: "Udaan", Year: 2010, Hero: "Rajat Barmecha", Heroine: "Ram Kapoor", Difficulty: game_constants.DifficultyMedium, Genre: "Drama"},
	{Title: "Gangs of Wasseypur", Year: 2012, Hero: "Manoj Bajpayee", Heroine: "Richa Chadha", Difficulty: game_constants.DifficultyMedium, Genre: "Crime"},
	{Title: "Raazi", Year: 2018, Hero: "Vicky Kaushal", Heroine: "Alia Bhatt", Difficulty: game_constants.DifficultyMedium, Genre: "Thriller"},
	{Title: "Andhadhun", Year: 2018, Hero: "Ayushmann Khurrana", Heroine: "Radhika Apte", Difficulty: game_constants.DifficultyMedium, Genre: "Thriller"},
	{Title: "Article 15", Year: 2019, Hero: "Ayushmann Khurrana", Heroine: "Sayani Gupta", Difficulty: game_constants.DifficultyMedium, Genre: "Drama"},
	{Title: "Gully Boy", Year: 2019, Hero: "Ranveer Singh", Heroine: "Alia Bhatt", Difficulty: game_constants.DifficultyMedium, Genre: "Drama"},
	{Title: "Tumbbad", Year: 2018, Hero: "Sohum Shah", Heroine: "Jyoti Malshe", Difficulty: game_constants.DifficultyMedium, Genre: "Horror"},
	{Title: "Newton", Year: 2017, Hero: "Rajkummar Rao", Heroine: "Anjali Patil", Difficulty: game_constants.DifficultyMedium, Genre: "Drama"},
	{Title: "Masaan", Year: 2015, Hero: "Vicky Kaushal", Heroine: "Richa Chadha", Difficulty: game_constants.DifficultyMedium, Genre: "Drama"},
	{Title: "Toilet Ek Prem Katha", Year: 2017, Hero: "Akshay Kumar", Heroine: "Bhumi Pednekar", Difficulty: game_constants.DifficultyMedium, Genre: "Comedy"},
	{Title: "Badhaai Ho", Year: 2018, Hero: "Ayushmann Khurrana", Heroine: "Sanya Malhotra", Difficulty: game_constants.DifficultyMedium, Genre: "Comedy"},
	{Title: "Shubh Mangal Zyada Saavdhan", Year: 2020, Hero: "Ayushmann Khurrana", Heroine: "Jitendra Kumar", Difficulty: game_constants.DifficultyMedium, Genre: "Comedy"},
	{Title: "Piku", Year: 2015, Hero: "Amitabh Bachchan", Heroine: "Deepika Padukone", Difficulty: game_constants.DifficultyMedium, Genre: "Comedy"},
	{Title: "Tamasha", Year: 2015, Hero: "Ranbir Kapoor", Heroine: "Deepika Padukone", Difficulty: game_constants.DifficultyMedium, Genre: "Drama"},
	{Title: "Rockstar", Year: 2011, Hero: "Ranbir Kapoor", Heroine: "Nargis Fakhri", Difficulty: game_constants.DifficultyMedium, Genre: "Drama"},
	{Title: "Lootera", Year: 2013, Hero: "Ranveer Singh", Heroine: "Sonakshi Sinha", Difficulty: game_constants.DifficultyMedium, Genre: "Romance"},

	// Hard
	{Title: "Jaane Bhi Do Yaaro", Year: 1983, Hero: "Naseeruddin Shah", Heroine: "Bhakti Barve", Difficulty: game_constants.DifficultyHard, Genre: "Comedy"},
	{Title: "Katha", Year: 1983, Hero: "Naseeruddin Shah", Heroine: "Deepti Naval", Difficulty: game_constants.DifficultyHard, Genre: "Drama"},
	{Title: "Ardh Satya", Year: 1983, Hero: "Om Puri", Heroine: "Smita Patil", Difficulty: game_constants.DifficultyHard, Genre: "Drama"},
	{Title: "Mirch Masala", Year: 1987, Hero: "Naseeruddin Shah", Heroine: "Smita Patil", Difficulty: game_constants.DifficultyHard, Genre: "Drama"},
	{Title: "Ankur", Year: 1974, Hero: "Anant Nag", Heroine: "Shabana Azmi", Difficulty: game_constants.DifficultyHard, Genre: "Drama"},
	{Title: "Sparsh", Year: 1980, Hero: "Naseeruddin Shah", Heroine: "Shabana Azmi", Difficulty: game_constants.DifficultyHard, Genre: "Drama"},
	{Title: "Paar", Year: 1984, Hero: "Naseeruddin Shah", Heroine: "Shabana Azmi", Difficulty: game_constants.DifficultyHard, Genre: "Drama"},
	{Title: "Manthan", Year: 1976, Hero: "Girish Karnad", Heroine: "Smita Patil", Difficulty: game_constants.DifficultyHard, Genre: "Drama"},
	{Title: "Bhumika", Year: 1977, Hero: "Amol Palekar", Heroine: "Smita Patil", Difficulty: game_constants.DifficultyHard, Genre: "Drama"},
	{Title: "Ijaazat", Year: 1987, Hero: "Naseeruddin Shah", Heroine: "Rekha", Difficulty: game_constants.DifficultyHard, Genre: "Drama"},
	{Title: "Ek Duuje Ke Liye", Year: 1981, Hero: "Kamal Haasan", Heroine: "Rati Agnihotri", Difficulty: game_constants.DifficultyHard, Genre: "Romance"},
	{Title: "Saaransh", Year: 1984, Hero: "Anupam Kher", Heroine: "Rohini Hattangadi", Difficulty: game_constants.DifficultyHard, Genre: "Drama"},
	{Title: "Jaane Tu Ya Jaane Na", Year: 2008, Hero: "Imran Khan", Heroine: "Genelia D'Souza", Difficulty: game_constants.DifficultyHard, Genre: "Romance"},
	{Title: "Band Baaja Baaraat", Year: 2010, Hero: "Ranveer Singh", Heroine: "Anushka Sharma", Difficulty: game_constants.DifficultyHard, Genre: "Comedy"},
	{Title: "Dev D", Year: 2009, Hero: "Abhay Deol", Heroine: "Mahie Gill", Difficulty: game_constants.DifficultyHard, Genre: "Drama"},
	{Title: "Oye Lucky Lucky Oye", Year: 2008, Hero: "Abhay Deol", Heroine: "Paresh Rawal", Difficulty: game_constants.DifficultyHard, Genre: "Comedy"},
	{Title: "Love Aaj Kal", Year: 2009, Hero: "Saif Ali Khan", Heroine: "Deepika Padukone", Difficulty: game_constants.DifficultyHard, Genre: "Romance"},
	{Title: "Pyaar Ke Side Effects", Year: 2006, Hero: "Rahul Bose", Heroine: "Mallika Sherawat", Difficulty: game_constants.DifficultyHard, Genre: "Comedy"},
	{Title: "Khosla Ka Ghosla", Year: 2006, Hero: "Anupam Kher", Heroine: "Boman Irani", Difficulty: game_constants.DifficultyHard, Genre: "Comedy"},
	{Title: "Johnny Gaddaar", Year: 2007, Hero: "Neil Nitin Mukesh", Heroine: "Rimi Sen", Difficulty: game_constants.DifficultyHard, Genre: "Thriller"},
	{Title: "Maqbool", Year: 2003, Hero: "Irrfan Khan", Heroine: "Tabu", Difficulty: game_constants.DifficultyHard, Genre: "Crime"},
	{Title: "Omkara", Year: 2006, Hero: "Ajay Devgn", Heroine: "Kareena Kapoor", Difficulty: game_constants.DifficultyHard, Genre: "Crime"},
	{Title: "Gulaal", Year: 2009, Hero: "Raj Singh Chaudhary", Heroine: "Jesse Randhawa", Difficulty: game_constants.DifficultyHard, Genre: "Drama"},
	{Title: "Kahaani", Year: 2012, Hero: "Parambrata Chatterjee", Heroine: "Vidya Balan", Difficulty: game_constants.DifficultyHard, Genre: "Thriller"},
	{Title: "Talaash", Year: 2012, Hero: "Aamir Khan", Heroine: "Rani Mukerji", Difficulty: game_constants.DifficultyHard, Genre: "Thriller"},
	{Title: "Shanghai", Year: 2012, Hero: "Emraan Hashmi", Heroine: "Kalki Koechlin", Difficulty: game_constants.DifficultyHard, Genre: "Drama"},
	{Title: "Ishqiya", Year: 2010, Hero: "Naseeruddin Shah", Heroine: "Vidya Balan", Difficulty: game_constants.DifficultyHard, Genre: "Crime"},
	{Title: "Dedh Ishqiya", Year: 2014, Hero: "Naseeruddin Shah", Heroine: "Madhuri Dixit", Difficulty: game_constants.DifficultyHard, Genre: "Crime"},
	{Title: "Aligarh", Year: 2015, Hero: "Manoj Bajpayee", Heroine: "Rajkummar Rao", Difficulty: game_constants.DifficultyHard, Genre: "Drama"},
	{Title: "Trapped", Year: 2017, Hero: "Rajkummar Rao", Heroine: "Geetanjali Thapa", Difficulty: game_constants.DifficultyHard, Genre: "Thriller"},
	{Title: "A Death in the Gunj", Year: 2016, Hero: "Vikrant Massey", Heroine: "Kalki Koechlin", Difficulty: game_constants.DifficultyHard, Genre: "Drama"},
	{Title: "Mukti Bhawan", Year: 2016, Hero: "Adil Hussain", Heroine: "Lalit Behl", Difficulty: game_constants.DifficultyHard, Genre: "Drama"},
	{Title: "Photograph", Year: 2019, Hero: "Nawazuddin Siddiqui", Heroine: "Sanya Malhotra", Difficulty: game_constants.DifficultyHard, Genre: "Romance"},
	{Title: "Thappad", Year: 2020, Hero: "Pavail Gulati", Heroine: "Taapsee Pannu", Difficulty: game_constants.DifficultyHard, Genre: "Drama"},
	{Title: "Bulbbul", Year: 2020, Hero: "Avinash Tiwary", Heroine: "Tripti Dimri", Difficulty: game_constants.DifficultyHard, Genre: "Horror"},
	{Title: "Pagglait", Year: 2021, Hero: "Ashutosh Rana", Heroine: "Sanya Malhotra", Difficulty: game_constants.DifficultyHard, Genre: "Drama"},
	{Title: "Raat Akeli Hai", Year: 2020, Hero: "Nawazuddin Siddiqui", Heroine: "Radhika Apte", Difficulty: game_constants.DifficultyHard, Genre: "Thriller"},
	{Title: "Ludo", Year: 2020, Hero: "Abhishek Bachchan", Heroine: "Rajkummar Rao", Difficulty: game_constants.DifficultyHard, Genre: "Comedy"},
	{Title: "Mimi", Year: 2021, Hero: "Pankaj Tripathi", Heroine: "Kriti Sanon", Difficulty: game_constants.DifficultyHard, Genre: "Comedy"},
	{Title: "Sardar Udham", Year: 2021, Hero: "Vicky Kaushal", Heroine: "Banita Sandhu", Difficulty: game_constants.DifficultyHard, Genre: "Drama"},
}
