package chain

// Minimal ABI fragments for the raffle contract and the two prize asset
// standards. Only the functions and events the executor touches.

const raffleABI = `[
	{
		"inputs": [
			{"name": "raffleId", "type": "uint256"},
			{"name": "prizeToken", "type": "address"},
			{"name": "prizeTokenId", "type": "uint256"},
			{"name": "prizeAmount", "type": "uint256"},
			{"name": "endTime", "type": "uint256"}
		],
		"name": "createAndActivate",
		"outputs": [],
		"stateMutability": "nonpayable",
		"type": "function"
	},
	{
		"inputs": [
			{"name": "raffleId", "type": "uint256"},
			{"name": "participants", "type": "address[]"},
			{"name": "ticketCounts", "type": "uint256[]"}
		],
		"name": "endRaffle",
		"outputs": [],
		"stateMutability": "nonpayable",
		"type": "function"
	},
	{
		"inputs": [{"name": "raffleId", "type": "uint256"}],
		"name": "isCreated",
		"outputs": [{"name": "", "type": "bool"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [{"name": "raffleId", "type": "uint256"}],
		"name": "settlement",
		"outputs": [
			{"name": "settled", "type": "bool"},
			{"name": "winner", "type": "address"}
		],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"anonymous": false,
		"inputs": [
			{"indexed": true, "name": "raffleId", "type": "uint256"},
			{"indexed": false, "name": "winner", "type": "address"}
		],
		"name": "RaffleEnded",
		"type": "event"
	}
]`

const erc721ABI = `[
	{
		"inputs": [
			{"name": "to", "type": "address"},
			{"name": "tokenId", "type": "uint256"}
		],
		"name": "approve",
		"outputs": [],
		"stateMutability": "nonpayable",
		"type": "function"
	},
	{
		"inputs": [{"name": "tokenId", "type": "uint256"}],
		"name": "getApproved",
		"outputs": [{"name": "", "type": "address"}],
		"stateMutability": "view",
		"type": "function"
	}
]`

const erc20ABI = `[
	{
		"inputs": [
			{"name": "spender", "type": "address"},
			{"name": "amount", "type": "uint256"}
		],
		"name": "approve",
		"outputs": [{"name": "", "type": "bool"}],
		"stateMutability": "nonpayable",
		"type": "function"
	},
	{
		"inputs": [
			{"name": "owner", "type": "address"},
			{"name": "spender", "type": "address"}
		],
		"name": "allowance",
		"outputs": [{"name": "", "type": "uint256"}],
		"stateMutability": "view",
		"type": "function"
	}
]`
