package session

// Texts printed by the session.  Scripts driving the simulator match them
// byte for byte.
const (
	menuText             = "\n1. Show the seats\n2. Buy a ticket\n3. Statistics\n0. Exit\n"
	seatsHeader          = "\nCinema:\n"
	rowPrompt            = "\nEnter a row number:\n"
	seatPrompt           = "Enter a seat number in that row:\n"
	priceFormat          = "Ticket price: $%d\n"
	wrongInputText       = "\nWrong input!\n"
	alreadyPurchasedText = "\nThat ticket has already been purchased!\n"
	statisticsFormat     = "\nNumber of purchased tickets: %d\nPercentage: %.2f%%\nCurrent income: $%d\nTotal income: $%d\n"
)
